package payload

import "github.com/ehihameneromosele/fullblog2c/database"

type CategoryRequest struct {
	Name string `json:"name"`
}

type CategoryResponse struct {
	ID   uint64 `json:"id"`
	UUID string `json:"uuid"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CategoryDetailResponse struct {
	CategoryResponse
	Posts         []PostResponse `json:"posts"`
	PostsCount    int64          `json:"posts_count"`
	CommentsCount int64          `json:"comments_count"`
	LikesCount    int64          `json:"likes_count"`
}

func GetCategoryResponse(category database.Category) CategoryResponse {
	return CategoryResponse{
		ID:   category.ID,
		UUID: category.UUID,
		Name: category.Name,
		Slug: category.Slug,
	}
}

func GetCategoriesResponse(categories []database.Category) []CategoryResponse {
	data := make([]CategoryResponse, 0, len(categories))

	for _, category := range categories {
		data = append(data, GetCategoryResponse(category))
	}

	return data
}
