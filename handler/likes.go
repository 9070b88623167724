package handler

import (
	"encoding/json"
	"log/slog"
	baseHttp "net/http"

	"github.com/ehihameneromosele/fullblog2c/database/repository"
	"github.com/ehihameneromosele/fullblog2c/handler/payload"
	"github.com/ehihameneromosele/fullblog2c/pkg/endpoint"
)

type LikesHandler struct {
	Likes *repository.Likes
	Posts *repository.Posts
	Users *repository.Users
}

func NewLikesHandler(likes *repository.Likes, posts *repository.Posts, users *repository.Users) LikesHandler {
	return LikesHandler{
		Likes: likes,
		Posts: posts,
		Users: users,
	}
}

// Toggle flips the actor's like on the post: 201 when the post ends up liked,
// 200 when the like was removed.
func (h *LikesHandler) Toggle(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
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

	liked, err := h.Likes.Toggle(postID, actor.ID)
	if err != nil {
		return translateRepoError("could not toggle the like", err)
	}

	resp := payload.LikeResponse{
		Liked: liked,
		Count: h.Likes.CountForPost(postID),
		State: "unliked",
	}

	status := baseHttp.StatusOK

	if liked {
		resp.State = "liked"
		status = baseHttp.StatusCreated
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}
