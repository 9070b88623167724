package payload

import (
	"time"

	"github.com/ehihameneromosele/fullblog2c/database"
)

type CommentRequest struct {
	Body string `json:"body"`
}

type CommentResponse struct {
	ID        uint64       `json:"id"`
	UUID      string       `json:"uuid"`
	PostID    uint64       `json:"post_id"`
	Author    UserResponse `json:"author"`
	Body      string       `json:"body"`
	CreatedAt time.Time    `json:"created_at"`
}

func GetCommentResponse(comment database.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		UUID:      comment.UUID,
		PostID:    comment.PostID,
		Author:    GetUserResponse(comment.Author),
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt,
	}
}

func GetCommentsResponse(comments []database.Comment) []CommentResponse {
	data := make([]CommentResponse, 0, len(comments))

	for _, comment := range comments {
		data = append(data, GetCommentResponse(comment))
	}

	return data
}
