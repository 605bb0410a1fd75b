package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	accountUC "github.com/khoahotran/dev-network/internal/application/usecase/account"
	profileUC "github.com/khoahotran/dev-network/internal/application/usecase/profile"
	"github.com/khoahotran/dev-network/pkg/apperror"
)

type ProfileHandler struct {
	upsertUseCase           *profileUC.UpsertProfileUseCase
	getUseCase              *profileUC.GetProfileUseCase
	listUseCase             *profileUC.ListProfilesUseCase
	addExperienceUseCase    *profileUC.AddExperienceUseCase
	removeExperienceUseCase *profileUC.RemoveExperienceUseCase
	addEducationUseCase     *profileUC.AddEducationUseCase
	removeEducationUseCase  *profileUC.RemoveEducationUseCase
	githubReposUseCase      *profileUC.GithubReposUseCase
	deleteAccountUseCase    *accountUC.DeleteAccountUseCase
}

func NewProfileHandler(
	upsert *profileUC.UpsertProfileUseCase,
	get *profileUC.GetProfileUseCase,
	list *profileUC.ListProfilesUseCase,
	addExperience *profileUC.AddExperienceUseCase,
	removeExperience *profileUC.RemoveExperienceUseCase,
	addEducation *profileUC.AddEducationUseCase,
	removeEducation *profileUC.RemoveEducationUseCase,
	githubRepos *profileUC.GithubReposUseCase,
	deleteAccount *accountUC.DeleteAccountUseCase,
) *ProfileHandler {
	return &ProfileHandler{
		upsertUseCase:           upsert,
		getUseCase:              get,
		listUseCase:             list,
		addExperienceUseCase:    addExperience,
		removeExperienceUseCase: removeExperience,
		addEducationUseCase:     addEducation,
		removeEducationUseCase:  removeEducation,
		githubReposUseCase:      githubRepos,
		deleteAccountUseCase:    deleteAccount,
	}
}

// GetMyProfile returns the authenticated caller's profile, or a not-found the
// frontend renders as "no profile yet".
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	output, err := h.getUseCase.Execute(c.Request.Context(), profileUC.GetProfileInput{OwnerID: userID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(bindingErrorDetails(err), err))
		return
	}

	output, err := h.upsertUseCase.Execute(c.Request.Context(), profileUC.UpsertProfileInput{
		OwnerID: userID,
		Fields:  req.ToUpdateFields(),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	output, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]ProfileDTO, len(output.Profiles))
	for i, p := range output.Profiles {
		dtos[i] = ToProfileDTO(p)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *ProfileHandler) GetProfileByUser(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("user_id must be a valid uuid", err))
		return
	}

	output, err := h.getUseCase.Execute(c.Request.Context(), profileUC.GetProfileInput{OwnerID: ownerID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req AddExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(bindingErrorDetails(err), err))
		return
	}

	output, err := h.addExperienceUseCase.Execute(c.Request.Context(), profileUC.AddExperienceInput{
		OwnerID:    userID,
		Experience: req.ToDomain(),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	expID, err := uuid.Parse(c.Param("exp_id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("exp_id must be a valid uuid", err))
		return
	}

	output, err := h.removeExperienceUseCase.Execute(c.Request.Context(), profileUC.RemoveExperienceInput{
		OwnerID:      userID,
		ExperienceID: expID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	var req AddEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(bindingErrorDetails(err), err))
		return
	}

	output, err := h.addEducationUseCase.Execute(c.Request.Context(), profileUC.AddEducationInput{
		OwnerID:   userID,
		Education: req.ToDomain(),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	eduID, err := uuid.Parse(c.Param("edu_id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("edu_id must be a valid uuid", err))
		return
	}

	output, err := h.removeEducationUseCase.Execute(c.Request.Context(), profileUC.RemoveEducationInput{
		OwnerID:     userID,
		EducationID: eduID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) GithubRepos(c *gin.Context) {
	output, err := h.githubReposUseCase.Execute(c.Request.Context(), profileUC.GithubReposInput{
		Username: c.Param("username"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.Repos)
}

// DeleteAccount removes the caller's posts, profile and account, in that
// order.
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	if err := h.deleteAccountUseCase.Execute(c.Request.Context(), accountUC.DeleteAccountInput{UserID: userID}); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
