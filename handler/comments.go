package handler

import (
	"encoding/json"
	"log/slog"
	baseHttp "net/http"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/database/repository"
	"github.com/ehihameneromosele/fullblog2c/handler/payload"
	"github.com/ehihameneromosele/fullblog2c/pkg/auth"
	"github.com/ehihameneromosele/fullblog2c/pkg/endpoint"
	"github.com/ehihameneromosele/fullblog2c/pkg/portal"
)

type CommentsHandler struct {
	Comments *repository.Comments
	Posts    *repository.Posts
	Users    *repository.Users
	Policy   auth.Policy
}

func NewCommentsHandler(comments *repository.Comments, posts *repository.Posts, users *repository.Users, policy auth.Policy) CommentsHandler {
	return CommentsHandler{
		Comments: comments,
		Posts:    posts,
		Users:    users,
		Policy:   policy,
	}
}

func (h *CommentsHandler) IndexForPost(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	postID, apiErr := parsePathID(r, "id")
	if apiErr != nil {
		return apiErr
	}

	if post := h.Posts.FindByID(postID); post == nil {
		return endpoint.NotFound("post not found")
	}

	comments, err := h.Comments.ListForPost(postID)
	if err != nil {
		slog.Error("Error getting comments", "err", err)
		return endpoint.InternalError("Error getting comments")
	}

	if err := json.NewEncoder(w).Encode(payload.GetCommentsResponse(comments)); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

func (h *CommentsHandler) Store(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	actor, apiErr := currentUser(r, h.Users)
	if apiErr != nil {
		return apiErr
	}

	postID, apiErr := parsePathID(r, "id")
	if apiErr != nil {
		return apiErr
	}

	if post := h.Posts.FindByID(postID); post == nil {
		return endpoint.NotFound("post not found")
	}

	req, err := endpoint.ParseRequestBody[payload.CommentRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	comment, err := h.Comments.Create(database.CommentsAttrs{
		PostID:   postID,
		AuthorID: actor.ID,
		Body:     req.Body,
	})

	if err != nil {
		return translateRepoError("could not create the comment", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(baseHttp.StatusCreated)

	if err := json.NewEncoder(w).Encode(payload.GetCommentResponse(*comment)); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

func (h *CommentsHandler) Show(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	id, apiErr := parsePathID(r, "id")
	if apiErr != nil {
		return apiErr
	}

	comment := h.Comments.FindByID(id)
	if comment == nil || !comment.Active {
		return endpoint.NotFound("comment not found")
	}

	if err := json.NewEncoder(w).Encode(payload.GetCommentResponse(*comment)); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

func (h *CommentsHandler) Update(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	actor, apiErr := currentUser(r, h.Users)
	if apiErr != nil {
		return apiErr
	}

	id, apiErr := parsePathID(r, "id")
	if apiErr != nil {
		return apiErr
	}

	comment := h.Comments.FindByID(id)
	if comment == nil || !comment.Active {
		return endpoint.NotFound("comment not found")
	}

	if !h.Policy.CanModifyComment(actor, *comment) {
		return endpoint.ForbiddenError("you cannot modify this comment")
	}

	req, err := endpoint.ParseRequestBody[payload.CommentRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	updated, err := h.Comments.Update(comment, req.Body)
	if err != nil {
		return translateRepoError("could not update the comment", err)
	}

	if err := json.NewEncoder(w).Encode(payload.GetCommentResponse(*updated)); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

// Delete deactivates the comment rather than removing the row, so threads
// keep their history while the comment disappears from every listing.
func (h *CommentsHandler) Delete(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	actor, apiErr := currentUser(r, h.Users)
	if apiErr != nil {
		return apiErr
	}

	id, apiErr := parsePathID(r, "id")
	if apiErr != nil {
		return apiErr
	}

	comment := h.Comments.FindByID(id)
	if comment == nil || !comment.Active {
		return endpoint.NotFound("comment not found")
	}

	if !h.Policy.CanModifyComment(actor, *comment) {
		return endpoint.ForbiddenError("you cannot modify this comment")
	}

	if err := h.Comments.Deactivate(comment); err != nil {
		return translateRepoError("could not delete the comment", err)
	}

	w.WriteHeader(baseHttp.StatusNoContent)

	return nil
}
