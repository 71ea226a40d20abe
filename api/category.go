package api

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"ledger/database"
	"ledger/models"
)

// CategoryHandler 收支分类管理
type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

type CategoryCreateRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=50" example:"餐饮"`
	Type     string `json:"type" binding:"required" example:"EXPENSE"`
	ParentID *uint  `json:"parent_id"`
}

type CategoryUpdateRequest struct {
	Name     string `json:"name" binding:"omitempty,min=1,max=50"`
	Type     string `json:"type" binding:"omitempty"`
	ParentID *uint  `json:"parent_id"`
}

// checkParent 校验父分类存在且类型一致
// 存储层不强制父子类型一致，这里在入口处拦截
func checkParent(c *gin.Context, parentID uint, catType string) bool {
	var parent models.Category
	if err := database.DB.First(&parent, parentID).Error; err != nil {
		BadRequest(c, "父分类不存在")
		return false
	}
	if parent.Type != catType {
		BadRequest(c, "子分类类型必须与父分类一致")
		return false
	}
	return true
}

// List 获取分类列表
// @Summary 获取分类列表
// @Description 获取全部收支分类（含父子层级）
// @Tags 分类
// @Produce json
// @Success 200 {object} Response{data=[]models.Category} "获取成功"
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	var list []models.Category
	if err := database.DB.Order("id ASC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, list)
}

// Create 创建分类
// @Summary 创建分类
// @Description 创建收支分类，可指定父分类构成两级树；子分类类型须与父分类一致
// @Tags 分类
// @Accept json
// @Produce json
// @Param request body CategoryCreateRequest true "分类信息"
// @Success 200 {object} Response{data=models.Category} "创建成功"
// @Failure 400 {object} Response "参数错误"
// @Router /api/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		BadRequest(c, "分类名称不能为空")
		return
	}
	if !models.IsValidCategoryType(req.Type) {
		BadRequest(c, "分类类型必须为 EXPENSE 或 INCOME")
		return
	}
	if req.ParentID != nil && !checkParent(c, *req.ParentID, req.Type) {
		return
	}

	cat := models.Category{Name: req.Name, Type: req.Type, ParentID: req.ParentID}
	if err := database.DB.Create(&cat).Error; err != nil {
		if isForeignKeyViolation(err) {
			BadRequest(c, "父分类不存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "创建失败"))
		return
	}
	SuccessWithMessage(c, "创建成功", cat)
}

// Update 更新分类
// @Summary 更新分类
// @Description 更新指定分类的名称、类型或父分类
// @Tags 分类
// @Accept json
// @Produce json
// @Param id path int true "分类ID"
// @Param request body CategoryUpdateRequest true "分类信息"
// @Success 200 {object} Response{data=models.Category} "更新成功"
// @Failure 400 {object} Response "参数错误"
// @Failure 404 {object} Response "分类不存在"
// @Router /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var cat models.Category
	if err := database.DB.First(&cat, uint(id64)).Error; err != nil {
		NotFound(c, "分类不存在")
		return
	}

	var req CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	newType := cat.Type
	if req.Type != "" {
		if !models.IsValidCategoryType(req.Type) {
			BadRequest(c, "分类类型必须为 EXPENSE 或 INCOME")
			return
		}
		newType = req.Type
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		name := strings.TrimSpace(req.Name)
		if name == "" {
			BadRequest(c, "分类名称不能为空")
			return
		}
		updates["name"] = name
	}
	if req.Type != "" {
		updates["type"] = newType
	}
	if req.ParentID != nil {
		if *req.ParentID == cat.ID {
			BadRequest(c, "父分类不能是自身")
			return
		}
		if !checkParent(c, *req.ParentID, newType) {
			return
		}
		updates["parent_id"] = *req.ParentID
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&cat).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "更新失败"))
			return
		}
	}

	database.DB.First(&cat, cat.ID)
	SuccessWithMessage(c, "更新成功", cat)
}

// Delete 删除分类
// @Summary 删除分类
// @Description 删除指定分类，数据库级联删除其子分类
// @Tags 分类
// @Produce json
// @Param id path int true "分类ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "分类不存在"
// @Router /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var cat models.Category
	if err := database.DB.First(&cat, uint(id64)).Error; err != nil {
		NotFound(c, "分类不存在")
		return
	}

	if err := database.DB.Delete(&cat).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
