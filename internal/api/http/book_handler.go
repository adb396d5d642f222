package http

import (
	"net/http"
	"strconv"

	"library-backend/internal/domain"
	"library-backend/internal/service"

	"github.com/gorilla/mux"
)

type BookHandler struct {
	bookSvc service.BookService
}

func NewBookHandler(bookSvc service.BookService) *BookHandler {
	return &BookHandler{bookSvc: bookSvc}
}

type addBookRequest struct {
	Title           string `json:"title"`
	ISBN            string `json:"isbn"`
	PageCount       int32  `json:"page_count"`
	PublicationYear int32  `json:"publication_year"`
	Language        string `json:"language"`

	AuthorID        int32  `json:"author_id"`
	AuthorFirstName string `json:"author_first_name"`
	AuthorLastName  string `json:"author_last_name"`

	CategoryID   int32  `json:"category_id"`
	CategoryName string `json:"category_name"`

	PublisherID   int32  `json:"publisher_id"`
	PublisherName string `json:"publisher_name"`
}

func (h *BookHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	var req addBookRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	book, err := h.bookSvc.AddBook(r.Context(), service.AddBookInput{
		Title:           req.Title,
		ISBN:            req.ISBN,
		PageCount:       req.PageCount,
		PublicationYear: req.PublicationYear,
		Language:        req.Language,
		AuthorID:        req.AuthorID,
		AuthorFirstName: req.AuthorFirstName,
		AuthorLastName:  req.AuthorLastName,
		CategoryID:      req.CategoryID,
		CategoryName:    req.CategoryName,
		PublisherID:     req.PublisherID,
		PublisherName:   req.PublisherName,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, book)
}

func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	book, err := h.bookSvc.GetBookByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

type listBooksResponse struct {
	Books      []domain.BookDetail `json:"books"`
	TotalCount int32               `json:"total_count"`
}

func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.BookFilter{
		Title:      q.Get("title"),
		ISBN:       q.Get("isbn"),
		CategoryID: queryInt32(q.Get("category_id"), 0),
		AuthorID:   queryInt32(q.Get("author_id"), 0),
		Page:       queryInt32(q.Get("page"), 1),
		PageSize:   queryInt32(q.Get("page_size"), 20),
	}

	books, total, err := h.bookSvc.ListBooks(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listBooksResponse{Books: books, TotalCount: total})
}

type addCopyRequest struct {
	BookID  int32  `json:"book_id"`
	ShelfID int32  `json:"shelf_id"`
	Barcode string `json:"barcode"`
}

func (h *BookHandler) AddCopy(w http.ResponseWriter, r *http.Request) {
	var req addCopyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	copy, err := h.bookSvc.AddCopy(r.Context(), service.AddCopyInput{
		BookID:  req.BookID,
		ShelfID: req.ShelfID,
		Barcode: req.Barcode,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, copy)
}

func (h *BookHandler) GetCopyByBarcode(w http.ResponseWriter, r *http.Request) {
	barcode := mux.Vars(r)["barcode"]
	copy, err := h.bookSvc.GetCopyByBarcode(r.Context(), barcode)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, copy)
}

func (h *BookHandler) ListCopies(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	copies, err := h.bookSvc.ListCopiesByBook(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, copies)
}

func (h *BookHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.bookSvc.ListAuthors(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authors)
}

func (h *BookHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.bookSvc.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *BookHandler) ListPublishers(w http.ResponseWriter, r *http.Request) {
	publishers, err := h.bookSvc.ListPublishers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, publishers)
}

func queryInt32(raw string, fallback int32) int32 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v <= 0 {
		return fallback
	}
	return int32(v)
}
