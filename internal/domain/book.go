package domain

// Book is a catalog title; physical instances are BookCopy rows.
type Book struct {
	ID              int32  `json:"id"`
	Title           string `json:"title"`
	ISBN            string `json:"isbn"`
	PageCount       int32  `json:"page_count"`
	PublicationYear int32  `json:"publication_year"`
	Language        string `json:"language"`
	CategoryID      int32  `json:"category_id"`
	PublisherID     int32  `json:"publisher_id"`
}

// BookCopy is one physical, barcoded instance of a book. IsAvailable is
// owned by the loan engine: false exactly while an active loan references
// the copy.
type BookCopy struct {
	ID            int32  `json:"id"`
	BarcodeNumber string `json:"barcode_number"`
	IsAvailable   bool   `json:"is_available"`
	BookID        int32  `json:"book_id"`
	ShelfID       int32  `json:"shelf_id"`
}

type Author struct {
	ID        int32  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Category struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

type Publisher struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

// BookDetail joins a book with its display context.
type BookDetail struct {
	Book
	CategoryName  string   `json:"category_name"`
	PublisherName string   `json:"publisher_name"`
	Authors       []Author `json:"authors,omitempty"`
}

// BookFilter narrows book listings; zero values mean "no filter".
type BookFilter struct {
	Title      string
	ISBN       string
	CategoryID int32
	AuthorID   int32
	Page       int32
	PageSize   int32
}
