package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/opolancoh/employee-permissions/internal/application/permission/usecases"
	"github.com/opolancoh/employee-permissions/internal/shared/constants"
	"github.com/opolancoh/employee-permissions/internal/shared/errors"
	"github.com/opolancoh/employee-permissions/internal/shared/logger"
	"github.com/opolancoh/employee-permissions/internal/shared/utils"
)

type PermissionHandler struct {
	requestPermissionUC requestPermissionUseCase
	modifyPermissionUC  modifyPermissionUseCase
	listPermissionsUC   listPermissionsUseCase
	logger              logger.Interface
}

func NewPermissionHandler(
	requestPermissionUC requestPermissionUseCase,
	modifyPermissionUC modifyPermissionUseCase,
	listPermissionsUC listPermissionsUseCase,
	logger logger.Interface,
) *PermissionHandler {
	return &PermissionHandler{
		requestPermissionUC: requestPermissionUC,
		modifyPermissionUC:  modifyPermissionUC,
		listPermissionsUC:   listPermissionsUC,
		logger:              logger,
	}
}

// PermissionRequest is the body of POST and PUT /api/permissions.
type PermissionRequest struct {
	EmployeeID       string  `json:"employeeId" binding:"required" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	PermissionTypeID string  `json:"permissionTypeId" binding:"required" example:"1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed"`
	GrantedDate      string  `json:"grantedDate" binding:"required" example:"2024-06-03T00:00:00Z"`
	Description      *string `json:"description" example:"Paid time off"`
}

func (r PermissionRequest) toCommand() (usecases.GrantCommand, error) {
	employeeID, err := uuid.Parse(r.EmployeeID)
	if err != nil {
		return usecases.GrantCommand{}, errors.NewValidationError(constants.ErrMsgValidationFailed, "employeeId must be a valid UUID")
	}
	permissionTypeID, err := uuid.Parse(r.PermissionTypeID)
	if err != nil {
		return usecases.GrantCommand{}, errors.NewValidationError(constants.ErrMsgValidationFailed, "permissionTypeId must be a valid UUID")
	}
	grantedDate, err := utils.ParseTimestamp(r.GrantedDate)
	if err != nil {
		return usecases.GrantCommand{}, errors.NewValidationError(constants.ErrMsgValidationFailed, "grantedDate must be an ISO-8601 timestamp")
	}
	return usecases.GrantCommand{
		EmployeeID:       employeeID,
		PermissionTypeID: permissionTypeID,
		GrantedDate:      grantedDate,
		Description:      r.Description,
	}, nil
}

func (h *PermissionHandler) bind(c *gin.Context, operation string) (usecases.GrantCommand, bool) {
	var req PermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body", "operation", operation, "error", err)
		utils.BadRequestResponse(c, utils.ValidationErrorFrom(err))
		return usecases.GrantCommand{}, false
	}
	cmd, err := req.toCommand()
	if err != nil {
		h.logger.Warnw("invalid request body", "operation", operation, "error", err)
		utils.BadRequestResponse(c, err)
		return usecases.GrantCommand{}, false
	}
	return cmd, true
}

// failed logs the classified error and answers with a generic 500.
func (h *PermissionHandler) failed(c *gin.Context, operation string, err error, keysAndValues ...interface{}) {
	args := append([]interface{}{
		"operation", operation,
		"error_type", errors.TypeOf(err),
		"error", err,
	}, keysAndValues...)
	h.logger.Errorw("["+operation+"] operation failed", args...)
	utils.InternalErrorResponse(c)
}

// RequestPermission grants a permission type to an employee
// @Summary Request a permission
// @Description Stores the grant, publishes a "request" operation event and indexes the grant
// @Tags Permissions
// @Accept json
// @Produce json
// @Param request body PermissionRequest true "Grant"
// @Success 204
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /permissions [post]
func (h *PermissionHandler) RequestPermission(c *gin.Context) {
	const operation = "RequestPermission"
	h.logger.Infow("[RequestPermission] Starting RequestPermission operation")

	cmd, ok := h.bind(c, operation)
	if !ok {
		return
	}

	if err := h.requestPermissionUC.Execute(c.Request.Context(), cmd); err != nil {
		h.failed(c, operation, err,
			"employee_id", cmd.EmployeeID,
			"permission_type_id", cmd.PermissionTypeID,
		)
		return
	}

	h.logger.Infow("[RequestPermission] Completed RequestPermission operation")
	utils.NoContentResponse(c)
}

// ModifyPermission amends an existing grant
// @Summary Modify a permission
// @Description Updates the grant's date and description, publishes a "modify" operation event and updates the indexed grant
// @Tags Permissions
// @Accept json
// @Produce json
// @Param request body PermissionRequest true "Grant"
// @Success 204
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /permissions [put]
func (h *PermissionHandler) ModifyPermission(c *gin.Context) {
	const operation = "ModifyPermission"
	h.logger.Infow("[ModifyPermission] Starting ModifyPermission operation")

	cmd, ok := h.bind(c, operation)
	if !ok {
		return
	}

	if err := h.modifyPermissionUC.Execute(c.Request.Context(), cmd); err != nil {
		h.failed(c, operation, err,
			"employee_id", cmd.EmployeeID,
			"permission_type_id", cmd.PermissionTypeID,
		)
		return
	}

	h.logger.Infow("[ModifyPermission] Completed ModifyPermission operation")
	utils.NoContentResponse(c)
}

// GetPermissions lists grants grouped by employee
// @Summary List permissions
// @Description Employees holding at least one permission, each with the permission types they hold
// @Tags Permissions
// @Produce json
// @Success 200 {array} dto.EmployeePermissionsDTO
// @Failure 500 {object} utils.APIResponse
// @Router /permissions [get]
func (h *PermissionHandler) GetPermissions(c *gin.Context) {
	const operation = "GetPermissions"
	h.logger.Infow("[GetPermissions] Starting GetPermissions operation")

	result, err := h.listPermissionsUC.Execute(c.Request.Context())
	if err != nil {
		h.failed(c, operation, err)
		return
	}

	h.logger.Infow("[GetPermissions] Completed GetPermissions operation")
	c.JSON(http.StatusOK, result)
}
