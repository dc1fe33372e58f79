/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package fake is an in-memory implementation of the comment endpoints.  It
// enforces the same request schema, authentication and error documents as
// the real service, and is used wherever a live account is unavailable.
package fake

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/go-chi/chi/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/nscaledev/wrike-comments/pkg/openapi"
)

const (
	// idAlphabet mimics the service's upper case base32 identifiers.
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	idLength   = 16

	// DefaultAuthorID is the author of every comment unless overridden.
	DefaultAuthorID = "KUAFAKE1"
)

//nolint:gochecknoglobals
var markupRegex = regexp.MustCompile(`<[^>]*>`)

// Option configures the server.
type Option func(*Server)

// WithToken sets the only bearer token the server accepts.
func WithToken(token string) Option {
	return func(s *Server) {
		s.token = token
	}
}

// WithAuthorID sets the author recorded against new comments.
func WithAuthorID(authorID string) Option {
	return func(s *Server) {
		s.authorID = authorID
	}
}

// WithTasks registers tasks comments may be attached to.
func WithTasks(taskIDs ...string) Option {
	return func(s *Server) {
		for _, id := range taskIDs {
			s.tasks[id] = struct{}{}
		}
	}
}

// WithFolders registers folders comments may be attached to.
func WithFolders(folderIDs ...string) Option {
	return func(s *Server) {
		for _, id := range folderIDs {
			s.folders[id] = struct{}{}
		}
	}
}

// Server implements http.Handler.
type Server struct {
	token    string
	authorID string

	router  routers.Router
	handler http.Handler

	lock     sync.Mutex
	tasks    map[string]struct{}
	folders  map[string]struct{}
	comments []openapi.Comment
}

// Ensure the interface is implemented.
var _ http.Handler = &Server{}

// New creates a new server with no comments.
func New(opts ...Option) (*Server, error) {
	doc, err := openapi.GetSwagger()
	if err != nil {
		return nil, err
	}

	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	s := &Server{
		authorID: DefaultAuthorID,
		router:   router,
		tasks:    map[string]struct{}{},
		folders:  map[string]struct{}{},
	}

	for _, o := range opts {
		o(s)
	}

	r := chi.NewRouter()
	r.Use(s.authenticate, s.validate)

	r.Get("/comments", s.listComments)
	r.Get("/comments/{commentId}", s.listCommentsByID)
	r.Put("/comments/{commentId}", s.updateComment)
	r.Delete("/comments/{commentId}", s.deleteComment)
	r.Get("/tasks/{taskId}/comments", s.listTaskComments)
	r.Post("/tasks/{taskId}/comments", s.createTaskComment)
	r.Get("/folders/{folderId}/comments", s.listFolderComments)
	r.Post("/folders/{folderId}/comments", s.createFolderComment)

	s.handler = r

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// AddTask registers a task after construction.
func (s *Server) AddTask(id string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.tasks[id] = struct{}{}
}

// AddFolder registers a folder after construction.
func (s *Server) AddFolder(id string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.folders[id] = struct{}{}
}

// Comments returns a snapshot of all stored comments in creation order.
func (s *Server) Comments() []openapi.Comment {
	s.lock.Lock()
	defer s.lock.Unlock()

	return slices.Clone(s.comments)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, description string) {
	writeJSON(w, status, &openapi.Error{
		Error:            code,
		ErrorDescription: description,
	})
}

func writeComments(w http.ResponseWriter, comments []openapi.Comment, plainText bool) {
	data := make([]openapi.Comment, len(comments))

	for i := range comments {
		data[i] = comments[i]

		if plainText {
			data[i].Text = markupRegex.ReplaceAllString(data[i].Text, "")
		}
	}

	writeJSON(w, http.StatusOK, &openapi.CommentList{
		Kind: openapi.KindComments,
		Data: data,
	})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.token == "" || r.Header.Get("Authorization") != "Bearer "+s.token {
			writeError(w, http.StatusUnauthorized, "not_authorized", "Authorization error")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// validate checks the request against the schema before it reaches a handler.
func (s *Server) validate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, pathParams, err := s.router.FindRoute(r)
		if err != nil {
			if errors.Is(err, routers.ErrMethodNotAllowed) {
				writeError(w, http.StatusMethodNotAllowed, "method_not_found", "Method not allowed")
				return
			}

			writeError(w, http.StatusNotFound, "method_not_found", "Method not found")

			return
		}

		var body []byte

		if r.Body != nil {
			if body, err = io.ReadAll(r.Body); err != nil {
				writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
				return
			}
		}

		r.Body = io.NopCloser(bytes.NewReader(body))

		input := &openapi3filter.RequestValidationInput{
			Request:    r,
			PathParams: pathParams,
			Route:      route,
		}

		if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))

		next.ServeHTTP(w, r)
	})
}

func plainText(r *http.Request) bool {
	return r.URL.Query().Get("plainText") == "true"
}

func (s *Server) filter(keep func(*openapi.Comment) bool) []openapi.Comment {
	var out []openapi.Comment

	for i := range s.comments {
		if keep(&s.comments[i]) {
			out = append(out, s.comments[i])
		}
	}

	return out
}

func (s *Server) find(id string) int {
	return slices.IndexFunc(s.comments, func(c openapi.Comment) bool {
		return c.ID == id
	})
}

func (s *Server) listComments(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	writeComments(w, s.comments, plainText(r))
}

func (s *Server) listCommentsByID(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	ids := strings.Split(chi.URLParam(r, "commentId"), ",")

	out := make([]openapi.Comment, 0, len(ids))

	for _, id := range ids {
		i := s.find(id)
		if i < 0 {
			writeError(w, http.StatusNotFound, "resource_not_found", "Comment not found")
			return
		}

		out = append(out, s.comments[i])
	}

	writeComments(w, out, plainText(r))
}

func (s *Server) listParentComments(w http.ResponseWriter, r *http.Request, parent openapi.Parent, known map[string]struct{}) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := known[parent.ID]; !ok {
		writeError(w, http.StatusNotFound, "resource_not_found", parent.Kind.String()+" not found")
		return
	}

	out := s.filter(func(c *openapi.Comment) bool {
		return c.Parent == parent
	})

	writeComments(w, out, plainText(r))
}

func (s *Server) listTaskComments(w http.ResponseWriter, r *http.Request) {
	s.listParentComments(w, r, openapi.Parent{Kind: openapi.ParentTask, ID: chi.URLParam(r, "taskId")}, s.tasks)
}

func (s *Server) listFolderComments(w http.ResponseWriter, r *http.Request) {
	s.listParentComments(w, r, openapi.Parent{Kind: openapi.ParentFolder, ID: chi.URLParam(r, "folderId")}, s.folders)
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

func (s *Server) createComment(w http.ResponseWriter, r *http.Request, parent openapi.Parent, known map[string]struct{}) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := known[parent.ID]; !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid "+parent.Kind.String()+" id")
		return
	}

	id, err := gonanoid.Generate(idAlphabet, idLength)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	created := now()

	comment := openapi.Comment{
		ID:          id,
		Text:        r.PostForm.Get("text"),
		AuthorID:    s.authorID,
		CreatedDate: created,
		UpdatedDate: created,
		Parent:      parent,
	}

	s.comments = append(s.comments, comment)

	writeComments(w, []openapi.Comment{comment}, false)
}

func (s *Server) createTaskComment(w http.ResponseWriter, r *http.Request) {
	s.createComment(w, r, openapi.Parent{Kind: openapi.ParentTask, ID: chi.URLParam(r, "taskId")}, s.tasks)
}

func (s *Server) createFolderComment(w http.ResponseWriter, r *http.Request) {
	s.createComment(w, r, openapi.Parent{Kind: openapi.ParentFolder, ID: chi.URLParam(r, "folderId")}, s.folders)
}

func (s *Server) updateComment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	i := s.find(chi.URLParam(r, "commentId"))
	if i < 0 {
		writeError(w, http.StatusNotFound, "resource_not_found", "Comment not found")
		return
	}

	s.comments[i].Text = r.PostForm.Get("text")
	s.comments[i].UpdatedDate = now()

	writeComments(w, []openapi.Comment{s.comments[i]}, false)
}

func (s *Server) deleteComment(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	i := s.find(chi.URLParam(r, "commentId"))
	if i < 0 {
		writeError(w, http.StatusNotFound, "resource_not_found", "Comment not found")
		return
	}

	s.comments = slices.Delete(s.comments, i, i+1)

	writeComments(w, nil, false)
}
