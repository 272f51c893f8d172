package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opolancoh/employee-permissions/internal/shared/errors"
	"github.com/opolancoh/employee-permissions/internal/shared/logger"
	"github.com/opolancoh/employee-permissions/internal/shared/utils"
)

// ReferenceDataHandler serves the read-only employee and permission type lists.
type ReferenceDataHandler struct {
	listEmployeesUC       listEmployeesUseCase
	listPermissionTypesUC listPermissionTypesUseCase
	logger                logger.Interface
}

func NewReferenceDataHandler(
	listEmployeesUC listEmployeesUseCase,
	listPermissionTypesUC listPermissionTypesUseCase,
	logger logger.Interface,
) *ReferenceDataHandler {
	return &ReferenceDataHandler{
		listEmployeesUC:       listEmployeesUC,
		listPermissionTypesUC: listPermissionTypesUC,
		logger:                logger,
	}
}

// ListEmployees
// @Summary List employees
// @Tags Reference data
// @Produce json
// @Success 200 {array} dto.EmployeeDTO
// @Failure 500 {object} utils.APIResponse
// @Router /employees [get]
func (h *ReferenceDataHandler) ListEmployees(c *gin.Context) {
	result, err := h.listEmployeesUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list employees", "error_type", errors.TypeOf(err), "error", err)
		utils.InternalErrorResponse(c)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListPermissionTypes
// @Summary List permission types
// @Tags Reference data
// @Produce json
// @Success 200 {array} dto.PermissionTypeDTO
// @Failure 500 {object} utils.APIResponse
// @Router /permission-types [get]
func (h *ReferenceDataHandler) ListPermissionTypes(c *gin.Context) {
	result, err := h.listPermissionTypesUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list permission types", "error_type", errors.TypeOf(err), "error", err)
		utils.InternalErrorResponse(c)
		return
	}
	c.JSON(http.StatusOK, result)
}
