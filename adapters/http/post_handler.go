package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	postUC "github.com/khoahotran/dev-network/internal/application/usecase/post"
	"github.com/khoahotran/dev-network/pkg/apperror"
)

type PostHandler struct {
	createUseCase *postUC.CreatePostUseCase
	listUseCase   *postUC.ListPostsUseCase
	getUseCase    *postUC.GetPostUseCase
	deleteUseCase *postUC.DeletePostUseCase
}

func NewPostHandler(create *postUC.CreatePostUseCase, list *postUC.ListPostsUseCase, get *postUC.GetPostUseCase, del *postUC.DeletePostUseCase) *PostHandler {
	return &PostHandler{
		createUseCase: create,
		listUseCase:   list,
		getUseCase:    get,
		deleteUseCase: del,
	}
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(bindingErrorDetails(err), err))
		return
	}

	output, err := h.createUseCase.Execute(c.Request.Context(), postUC.CreatePostInput{
		OwnerID: userID,
		Text:    req.Text,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPostDTO(output.Post))
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	output, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]PostDTO, len(output.Posts))
	for i, p := range output.Posts {
		dtos[i] = ToPostDTO(p)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("id must be a valid uuid", err))
		return
	}

	output, err := h.getUseCase.Execute(c.Request.Context(), postUC.GetPostInput{PostID: postID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPostDTO(output.Post))
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("id must be a valid uuid", err))
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), postUC.DeletePostInput{
		PostID:  postID,
		OwnerID: userID,
	}); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post removed"})
}
