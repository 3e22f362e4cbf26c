package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"recipehub/domain"
	"recipehub/internal/api/presenters"
	"recipehub/pkg/generator"
	"recipehub/pkg/recipe"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeBySlug(c *fiber.Ctx) error
		GetRecentRecipes(c *fiber.Ctx) error
		GetMyRecipes(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		GetBookmarkedRecipes(c *fiber.Ctx) error
		BookmarkRecipe(c *fiber.Ctx) error
		RemoveBookmark(c *fiber.Ctx) error
		ClearBookmarks(c *fiber.Ctx) error
		GenerateRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService    recipe.RecipeService
		generatorService generator.GeneratorService
		validator        *validator.Validate
	}
)

func NewRecipeHandler(
	recipeService recipe.RecipeService,
	generatorService generator.GeneratorService,
	validator *validator.Validate,
) RecipeHandler {
	return &recipeHandler{
		recipeService:    recipeService,
		generatorService: generatorService,
		validator:        validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	req := new(domain.RecipeListRequest)
	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Tags = splitList(queryValues(c, "tags")...)

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, err)
	}

	res, err := h.recipeService.GetRecipes(c.UserContext(), *req, viewerID(c))
	if err != nil {
		return failure(c, domain.MessageFailedGetRecipes, err)
	}

	message := domain.MessageSuccessGetRecipes
	if req.Search != "" {
		message = domain.MessageSuccessSearchRecipes
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, message)
}

func (h *recipeHandler) GetRecipeBySlug(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipeBySlug(c.UserContext(), c.Params("slug"), viewerID(c))
	if err != nil {
		return failure(c, domain.MessageFailedGetRecipeDetail, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) GetRecentRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecentRecipes(c.UserContext(), c.QueryInt("limit", domain.DefaultRecentSize), viewerID(c))
	if err != nil {
		return failure(c, domain.MessageFailedGetRecentRecipes, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecentRecipes)
}

func (h *recipeHandler) GetMyRecipes(c *fiber.Ctx) error {
	page, limit := pageParams(c)

	res, err := h.recipeService.GetMyRecipes(c.UserContext(), page, limit, viewerID(c))
	if err != nil {
		return failure(c, domain.MessageFailedGetMyRecipes, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMyRecipes)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if form, err := c.MultipartForm(); err == nil {
		if len(req.Ingredients) == 0 {
			req.Ingredients = indexedFormValues(form.Value, "ingredients")
		}
		if len(req.Steps) == 0 {
			req.Steps = indexedFormValues(form.Value, "steps")
		}
		if len(req.Tags) == 0 {
			req.Tags = indexedFormValues(form.Value, "tags")
		}
	}
	req.Ingredients = expandFormList(req.Ingredients)
	req.Steps = expandFormList(req.Steps)
	req.Tags = expandFormList(req.Tags)

	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, err)
	}

	res, err := h.recipeService.CreateRecipe(c.UserContext(), *req, viewerID(c))
	if err != nil {
		return failure(c, domain.MessageFailedCreateRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	if err := h.recipeService.DeleteRecipe(c.UserContext(), c.Params("slug"), viewerID(c)); err != nil {
		return failure(c, domain.MessageFailedDeleteRecipe, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *recipeHandler) GetBookmarkedRecipes(c *fiber.Ctx) error {
	page, limit := pageParams(c)

	res, err := h.recipeService.GetBookmarkedRecipes(c.UserContext(), page, limit, viewerID(c))
	if err != nil {
		return failure(c, domain.MessageFailedGetBookmarks, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBookmarks)
}

func (h *recipeHandler) BookmarkRecipe(c *fiber.Ctx) error {
	if err := h.recipeService.BookmarkRecipe(c.UserContext(), c.Params("slug"), viewerID(c)); err != nil {
		return failure(c, domain.MessageFailedBookmarkRecipe, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessBookmarkRecipe)
}

func (h *recipeHandler) RemoveBookmark(c *fiber.Ctx) error {
	if err := h.recipeService.RemoveBookmark(c.UserContext(), c.Params("slug"), viewerID(c)); err != nil {
		return failure(c, domain.MessageFailedRemoveBookmark, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveBookmark)
}

func (h *recipeHandler) ClearBookmarks(c *fiber.Ctx) error {
	removed, err := h.recipeService.ClearBookmarks(c.UserContext(), viewerID(c))
	if err != nil {
		return failure(c, domain.MessageFailedClearBookmarks, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"removed": removed}, fiber.StatusOK, domain.MessageSuccessClearBookmarks)
}

func (h *recipeHandler) GenerateRecipe(c *fiber.Ctx) error {
	req := new(domain.GenerateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, err)
	}

	res, err := h.generatorService.GenerateRecipe(c.UserContext(), req.Prompt)
	if err != nil {
		return failure(c, domain.MessageFailedGenerateRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateRecipe)
}
