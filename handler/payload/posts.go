package payload

import (
	"time"

	"github.com/ehihameneromosele/fullblog2c/database"
)

type PostRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	CategoryID uint64 `json:"category_id"`
	Published  *bool  `json:"published"`
}

type PostResponse struct {
	ID            uint64            `json:"id"`
	UUID          string            `json:"uuid"`
	Title         string            `json:"title"`
	Slug          string            `json:"slug"`
	Content       string            `json:"content"`
	CoverImageURL string            `json:"cover_image_url,omitempty"`
	Published     bool              `json:"published"`
	Author        UserResponse      `json:"author"`
	Category      *CategoryResponse `json:"category"`
	CommentsCount int64             `json:"comments_count"`
	LikesCount    int64             `json:"likes_count"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type PostDetailResponse struct {
	PostResponse
	Comments []CommentResponse `json:"comments"`
}

type ImageUploadResponse struct {
	URL string `json:"url"`
}

// PostCounters decouples the response shape from the repository the handler
// reads the totals from.
type PostCounters interface {
	CommentsCount(postID uint64) int64
	LikesCount(postID uint64) int64
}

func GetPostResponse(post database.Post, counters PostCounters) PostResponse {
	resp := PostResponse{
		ID:            post.ID,
		UUID:          post.UUID,
		Title:         post.Title,
		Slug:          post.Slug,
		Content:       post.Content,
		CoverImageURL: post.CoverImageURL,
		Published:     post.Published,
		Author:        GetUserResponse(post.Author),
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}

	if post.Category != nil {
		category := GetCategoryResponse(*post.Category)
		resp.Category = &category
	}

	if counters != nil {
		resp.CommentsCount = counters.CommentsCount(post.ID)
		resp.LikesCount = counters.LikesCount(post.ID)
	}

	return resp
}

func GetPostsResponse(posts []database.Post, counters PostCounters) []PostResponse {
	data := make([]PostResponse, 0, len(posts))

	for _, post := range posts {
		data = append(data, GetPostResponse(post, counters))
	}

	return data
}

func GetPostDetailResponse(post database.Post, counters PostCounters) PostDetailResponse {
	return PostDetailResponse{
		PostResponse: GetPostResponse(post, counters),
		Comments:     GetCommentsResponse(post.Comments),
	}
}
