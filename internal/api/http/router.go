package http

import (
	"net/http"

	"library-backend/internal/security"
	"library-backend/internal/service"

	"github.com/gorilla/mux"
)

// Services bundles everything the API surface depends on.
type Services struct {
	Auth      service.AuthService
	Users     service.UserService
	Loans     service.LoanService
	Fines     service.FineService
	FineTypes service.FineTypeService
	Books     service.BookService
	Locations service.LocationService
	Dashboard service.DashboardService
}

// NewRouter wires all handlers under /api. Mutating catalog, location, fine
// and fine-type routes are admin only; members reach their own loans and
// fines through the authenticated routes.
func NewRouter(svcs Services, tokens security.TokenManager) *mux.Router {
	authHandler := NewAuthHandler(svcs.Auth)
	loanHandler := NewLoanHandler(svcs.Loans)
	fineHandler := NewFineHandler(svcs.Fines, svcs.FineTypes)
	bookHandler := NewBookHandler(svcs.Books)
	locationHandler := NewLocationHandler(svcs.Locations)
	userHandler := NewUserHandler(svcs.Users, svcs.Dashboard)

	r := mux.NewRouter()
	r.Use(RequestLogging)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Public auth endpoints.
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)

	// Everything below requires a valid access token.
	authed := api.NewRoute().Subrouter()
	authed.Use(Authenticate(tokens))

	authed.HandleFunc("/users/me", userHandler.Me).Methods(http.MethodGet)

	authed.HandleFunc("/books", bookHandler.ListBooks).Methods(http.MethodGet)
	authed.HandleFunc("/books/{id:[0-9]+}", bookHandler.GetBook).Methods(http.MethodGet)
	authed.HandleFunc("/books/{id:[0-9]+}/copies", bookHandler.ListCopies).Methods(http.MethodGet)
	authed.HandleFunc("/copies/{barcode}", bookHandler.GetCopyByBarcode).Methods(http.MethodGet)
	authed.HandleFunc("/authors", bookHandler.ListAuthors).Methods(http.MethodGet)
	authed.HandleFunc("/categories", bookHandler.ListCategories).Methods(http.MethodGet)
	authed.HandleFunc("/publishers", bookHandler.ListPublishers).Methods(http.MethodGet)

	authed.HandleFunc("/rooms", locationHandler.ListRooms).Methods(http.MethodGet)
	authed.HandleFunc("/rooms/{id:[0-9]+}/shelves", locationHandler.ListShelves).Methods(http.MethodGet)

	authed.HandleFunc("/loans/{id:[0-9]+}", loanHandler.GetLoan).Methods(http.MethodGet)
	authed.HandleFunc("/users/{userId}/loans", loanHandler.ListUserLoans).Methods(http.MethodGet)
	authed.HandleFunc("/users/{userId}/can-borrow", loanHandler.CanBorrow).Methods(http.MethodGet)
	authed.HandleFunc("/users/{userId}/fines", fineHandler.ListUserFines).Methods(http.MethodGet)

	// Administrative surface: lending desk and catalog management.
	admin := api.NewRoute().Subrouter()
	admin.Use(Authenticate(tokens), RequireAdmin)

	admin.HandleFunc("/loans", loanHandler.CreateLoan).Methods(http.MethodPost)
	admin.HandleFunc("/loans/{id:[0-9]+}", loanHandler.UpdateLoan).Methods(http.MethodPut)
	admin.HandleFunc("/loans/return", loanHandler.ReturnBook).Methods(http.MethodPost)

	admin.HandleFunc("/fines", fineHandler.AddFine).Methods(http.MethodPost)
	admin.HandleFunc("/fines", fineHandler.ListFinesByEmail).Methods(http.MethodGet)
	admin.HandleFunc("/fines/{id:[0-9]+}/pay", fineHandler.PayFine).Methods(http.MethodPost)
	admin.HandleFunc("/fines/{id:[0-9]+}/revoke", fineHandler.RevokeFine).Methods(http.MethodPost)

	admin.HandleFunc("/fine-types", fineHandler.AddFineType).Methods(http.MethodPost)
	admin.HandleFunc("/fine-types", fineHandler.ListFineTypes).Methods(http.MethodGet)
	admin.HandleFunc("/fine-types/{id:[0-9]+}", fineHandler.UpdateFineType).Methods(http.MethodPut)

	admin.HandleFunc("/books", bookHandler.AddBook).Methods(http.MethodPost)
	admin.HandleFunc("/copies", bookHandler.AddCopy).Methods(http.MethodPost)

	admin.HandleFunc("/rooms", locationHandler.AddRoom).Methods(http.MethodPost)
	admin.HandleFunc("/rooms/{id:[0-9]+}/shelves", locationHandler.AddShelf).Methods(http.MethodPost)

	admin.HandleFunc("/users", userHandler.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", userHandler.GetUser).Methods(http.MethodGet)
	admin.HandleFunc("/dashboard", userHandler.Dashboard).Methods(http.MethodGet)

	return r
}
