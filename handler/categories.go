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

type CategoriesHandler struct {
	Categories *repository.Categories
	Users      *repository.Users
	Policy     auth.Policy
}

func NewCategoriesHandler(categories *repository.Categories, users *repository.Users, policy auth.Policy) CategoriesHandler {
	return CategoriesHandler{
		Categories: categories,
		Users:      users,
		Policy:     policy,
	}
}

func (h *CategoriesHandler) Index(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	categories, err := h.Categories.GetAll()

	if err != nil {
		slog.Error("Error getting categories", "err", err)
		return endpoint.InternalError("Error getting categories")
	}

	items := payload.GetCategoriesResponse(categories)

	if err := json.NewEncoder(w).Encode(items); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

func (h *CategoriesHandler) Show(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	id, apiErr := parsePathID(r, "id")
	if apiErr != nil {
		return apiErr
	}

	category := h.Categories.FindByID(id)
	if category == nil {
		return endpoint.NotFound("category not found")
	}

	posts, comments, likes := h.Categories.CountersFor(*category)

	resp := payload.CategoryDetailResponse{
		CategoryResponse: payload.GetCategoryResponse(*category),
		Posts:            payload.GetPostsResponse(category.Posts, nil),
		PostsCount:       posts,
		CommentsCount:    comments,
		LikesCount:       likes,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

func (h *CategoriesHandler) Store(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	actor, apiErr := currentUser(r, h.Users)
	if apiErr != nil {
		return apiErr
	}

	if !h.Policy.CanAdministerCategory(actor) {
		return endpoint.ForbiddenError("only blog admins can manage categories")
	}

	req, err := endpoint.ParseRequestBody[payload.CategoryRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	category, err := h.Categories.Create(database.CategoriesAttrs{Name: req.Name})
	if err != nil {
		return translateRepoError("could not create the category", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(baseHttp.StatusCreated)

	if err := json.NewEncoder(w).Encode(payload.GetCategoryResponse(*category)); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

func (h *CategoriesHandler) Update(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	actor, apiErr := currentUser(r, h.Users)
	if apiErr != nil {
		return apiErr
	}

	if !h.Policy.CanAdministerCategory(actor) {
		return endpoint.ForbiddenError("only blog admins can manage categories")
	}

	id, apiErr := parsePathID(r, "id")
	if apiErr != nil {
		return apiErr
	}

	req, err := endpoint.ParseRequestBody[payload.CategoryRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	category, err := h.Categories.Update(id, database.CategoriesAttrs{Name: req.Name})
	if err != nil {
		return translateRepoError("could not update the category", err)
	}

	if err := json.NewEncoder(w).Encode(payload.GetCategoryResponse(*category)); err != nil {
		slog.Error("failed to encode response", "err", err)

		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

func (h *CategoriesHandler) Delete(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	actor, apiErr := currentUser(r, h.Users)
	if apiErr != nil {
		return apiErr
	}

	if !h.Policy.CanAdministerCategory(actor) {
		return endpoint.ForbiddenError("only blog admins can manage categories")
	}

	id, apiErr := parsePathID(r, "id")
	if apiErr != nil {
		return apiErr
	}

	if err := h.Categories.Delete(id); err != nil {
		return translateRepoError("could not delete the category", err)
	}

	w.WriteHeader(baseHttp.StatusNoContent)

	return nil
}
