package routes

import (
	"net/http"
	"path/filepath"

	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/repositories"
	"inkwell/app/services"
	"inkwell/app/sessions"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services and controllers onto a router.
// basePath anchors template and static file lookups; tests point it at a
// fixture directory.
func SetupRoutes(db *gorm.DB, sessionSecret, basePath string) *mux.Router {
	userRepo := repositories.NewGormUserRepository(db)
	postRepo := repositories.NewGormPostRepository(db)
	commentRepo := repositories.NewGormCommentRepository(db)

	manager := sessions.NewManager(sessionSecret, userRepo)

	authService := services.NewAuthService(userRepo)
	postService := services.NewPostService(postRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)

	authController := controllers.NewAuthController(authService, manager, basePath)
	postController := controllers.NewPostController(postService, commentService, manager, basePath)
	pageController := controllers.NewPageController(manager, basePath)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.WithUser(manager))

	// Serve static files
	staticDir := filepath.Join(basePath, "static")
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	// Public routes
	router.HandleFunc("/", postController.Index).Methods("GET")
	router.HandleFunc("/register", authController.ShowRegister).Methods("GET")
	router.HandleFunc("/register", authController.Register).Methods("POST")
	router.HandleFunc("/login", authController.ShowLogin).Methods("GET")
	router.HandleFunc("/login", authController.Login).Methods("POST")
	router.HandleFunc("/logout", authController.Logout).Methods("GET")
	router.HandleFunc("/post/{id:[0-9]+}", postController.Show).Methods("GET")
	router.HandleFunc("/post/{id:[0-9]+}", postController.Comment).Methods("POST")
	router.HandleFunc("/about", pageController.About).Methods("GET")
	router.HandleFunc("/contact", pageController.Contact).Methods("GET")

	// Admin-gated post mutation routes
	router.Handle("/new-post", middleware.RequireAdmin(http.HandlerFunc(postController.New))).Methods("GET")
	router.Handle("/new-post", middleware.RequireAdmin(http.HandlerFunc(postController.Create))).Methods("POST")
	router.Handle("/edit-post/{id:[0-9]+}", middleware.RequireAdmin(http.HandlerFunc(postController.Edit))).Methods("GET")
	router.Handle("/edit-post/{id:[0-9]+}", middleware.RequireAdmin(http.HandlerFunc(postController.Update))).Methods("POST")
	router.Handle("/delete/{id:[0-9]+}", middleware.RequireAdmin(http.HandlerFunc(postController.Delete))).Methods("GET")

	return router
}
