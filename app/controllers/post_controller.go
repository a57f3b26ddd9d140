package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"inkwell/app/middleware"
	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"
	"inkwell/app/sessions"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts and their comments
type PostController struct {
	renderer
	postService    *services.PostService
	commentService *services.CommentService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, commentService *services.CommentService, manager *sessions.Manager, basePath string) *PostController {
	return &PostController{
		renderer:       renderer{templates: loadTemplates(basePath), sessions: manager},
		postService:    postService,
		commentService: commentService,
	}
}

// Index handles listing all posts. It renders for anonymous and
// authenticated viewers alike.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		http.Error(w, "Failed to fetch posts", http.StatusInternalServerError)
		return
	}
	pc.render(w, r, "index", &templateData{Posts: posts})
}

// Show handles displaying a single post with its comments
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, err := pc.postService.GetPost(id)
	if errors.Is(err, repositories.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch post", http.StatusInternalServerError)
		return
	}
	pc.render(w, r, "post", &templateData{Post: post})
}

// Comment appends a comment to a post. Comment authorship is tied to the
// session, so anonymous submitters are sent to the login page instead.
func (pc *PostController) Comment(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	user := middleware.UserFrom(r.Context())
	if user == nil {
		pc.sessions.Flash(w, r, "you need to log in or register to comment")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	_, addErr := pc.commentService.AddComment(id, user, r.FormValue("text"))
	if errors.Is(addErr, repositories.ErrNotFound) {
		http.NotFound(w, r)
		return
	}

	// Re-render the post with the updated comment list.
	post, err := pc.postService.GetPost(id)
	if err != nil {
		http.Error(w, "Failed to fetch post", http.StatusInternalServerError)
		return
	}
	data := &templateData{Post: post}
	if addErr != nil {
		data.Flashes = []string{addErr.Error()}
	}
	pc.render(w, r, "post", data)
}

// New displays the form for creating a new post
func (pc *PostController) New(w http.ResponseWriter, r *http.Request) {
	pc.render(w, r, "make-post", &templateData{Form: url.Values{}})
}

// Create handles creating a new post, stamped with the current identity as
// author and today's date
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	post := &models.Post{
		Title:    r.FormValue("title"),
		Subtitle: r.FormValue("subtitle"),
		ImageURL: r.FormValue("img_url"),
		Body:     r.FormValue("body"),
	}
	if err := pc.postService.CreatePost(post, middleware.UserFrom(r.Context())); err != nil {
		pc.render(w, r, "make-post", &templateData{
			Flashes: []string{err.Error()},
			Form:    r.PostForm,
		})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Edit loads a post and pre-fills the edit form
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, err := pc.postService.GetPost(id)
	if errors.Is(err, repositories.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch post", http.StatusInternalServerError)
		return
	}

	form := url.Values{}
	form.Set("title", post.Title)
	form.Set("subtitle", post.Subtitle)
	form.Set("img_url", post.ImageURL)
	form.Set("body", post.Body)
	pc.render(w, r, "make-post", &templateData{Post: post, IsEdit: true, Form: form})
}

// Update mutates a post's title, subtitle, image and body in place
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	post, err := pc.postService.UpdatePost(id,
		r.FormValue("title"),
		r.FormValue("subtitle"),
		r.FormValue("img_url"),
		r.FormValue("body"),
	)
	if errors.Is(err, repositories.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		// Reload the post so the edit form still knows its target.
		existing, getErr := pc.postService.GetPost(id)
		if getErr != nil {
			http.Error(w, "Failed to fetch post", http.StatusInternalServerError)
			return
		}
		pc.render(w, r, "make-post", &templateData{
			Flashes: []string{err.Error()},
			Post:    existing,
			IsEdit:  true,
			Form:    r.PostForm,
		})
		return
	}
	http.Redirect(w, r, "/post/"+strconv.FormatUint(uint64(post.ID), 10), http.StatusSeeOther)
}

// Delete removes a post and its comments, then redirects to the listing
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := pc.postService.DeletePost(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Failed to delete post", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// postID parses the {id} path variable
func postID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
