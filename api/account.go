package api

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"ledger/database"
	"ledger/models"
	"ledger/service"
)

// AccountHandler 账户处理器
type AccountHandler struct{}

// NewAccountHandler 创建账户处理器
func NewAccountHandler() *AccountHandler {
	return &AccountHandler{}
}

// CreateAccountRequest 创建账户请求
type CreateAccountRequest struct {
	Name           string          `json:"name" binding:"required,min=1,max=50" example:"招行储蓄卡"`
	Type           string          `json:"type" binding:"omitempty,max=20" example:"cash"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	BillingDay     *int            `json:"billing_day" binding:"omitempty,min=1,max=31"`
	DueDay         *int            `json:"due_day" binding:"omitempty,min=1,max=31"`
}

// UpdateAccountRequest 更新账户请求
type UpdateAccountRequest struct {
	Name           string           `json:"name" binding:"omitempty,min=1,max=50"`
	Type           *string          `json:"type" binding:"omitempty,max=20"`
	InitialBalance *decimal.Decimal `json:"initial_balance"`
	BillingDay     *int             `json:"billing_day" binding:"omitempty,min=1,max=31"`
	DueDay         *int             `json:"due_day" binding:"omitempty,min=1,max=31"`
}

// AccountOut 账户响应（附带推导余额）
type AccountOut struct {
	models.Account
	Balance decimal.Decimal `json:"balance"`
}

// List 获取账户列表
// @Summary 获取账户列表
// @Description 获取所有账户，每个账户附带由初始余额和交易流水推导出的当前余额
// @Tags 账户
// @Produce json
// @Success 200 {object} Response{data=[]AccountOut} "获取成功"
// @Router /api/accounts [get]
func (h *AccountHandler) List(c *gin.Context) {
	var accounts []models.Account
	if err := database.DB.Order("id ASC").Find(&accounts).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	// 余额变动量用两趟聚合查询一次算完，再逐账户叠加初始余额
	deltas, err := service.BalanceDeltas(database.DB)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "余额计算失败"))
		return
	}

	out := make([]AccountOut, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, AccountOut{Account: a, Balance: service.AccountBalance(a, deltas)})
	}
	Success(c, out)
}

// Create 创建账户
// @Summary 创建账户
// @Description 创建新账户，名称唯一；余额不落库，始终由交易流水推导
// @Tags 账户
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "账户信息"
// @Success 200 {object} Response{data=AccountOut} "创建成功"
// @Failure 400 {object} Response "请求参数错误或名称已存在"
// @Router /api/accounts [post]
func (h *AccountHandler) Create(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		BadRequest(c, "账户名称不能为空")
		return
	}

	// 唯一性
	var existing models.Account
	if err := database.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		BadRequest(c, "账户名称已存在")
		return
	}

	account := models.Account{
		Name:           req.Name,
		Type:           req.Type,
		InitialBalance: req.InitialBalance,
		BillingDay:     req.BillingDay,
		DueDay:         req.DueDay,
	}
	if err := database.DB.Create(&account).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建账户失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", AccountOut{Account: account, Balance: account.InitialBalance})
}

// Update 更新账户
// @Summary 更新账户
// @Description 更新指定账户的基础信息
// @Tags 账户
// @Accept json
// @Produce json
// @Param id path int true "账户ID"
// @Param request body UpdateAccountRequest true "账户信息"
// @Success 200 {object} Response{data=models.Account} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "账户不存在"
// @Router /api/accounts/{id} [put]
func (h *AccountHandler) Update(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var account models.Account
	if err := database.DB.First(&account, uint(id64)).Error; err != nil {
		NotFound(c, "账户不存在")
		return
	}

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		name := strings.TrimSpace(req.Name)
		if name == "" {
			BadRequest(c, "账户名称不能为空")
			return
		}
		var existing models.Account
		if err := database.DB.Where("name = ? AND id <> ?", name, account.ID).First(&existing).Error; err == nil {
			BadRequest(c, "账户名称已存在")
			return
		}
		updates["name"] = name
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.InitialBalance != nil {
		updates["initial_balance"] = *req.InitialBalance
	}
	if req.BillingDay != nil {
		updates["billing_day"] = *req.BillingDay
	}
	if req.DueDay != nil {
		updates["due_day"] = *req.DueDay
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&account).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "更新失败"))
			return
		}
	}

	database.DB.First(&account, account.ID)
	SuccessWithMessage(c, "更新成功", account)
}

// Delete 删除账户
// @Summary 删除账户
// @Description 删除指定账户，数据库级联删除其作为转出或转入方的全部交易记录
// @Tags 账户
// @Produce json
// @Param id path int true "账户ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "账户不存在"
// @Router /api/accounts/{id} [delete]
func (h *AccountHandler) Delete(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var account models.Account
	if err := database.DB.First(&account, uint(id64)).Error; err != nil {
		NotFound(c, "账户不存在")
		return
	}

	// 外键 ON DELETE CASCADE 负责清理该账户名下的交易
	if err := database.DB.Delete(&account).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
