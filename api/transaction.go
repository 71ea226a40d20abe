package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ledger/database"
	"ledger/models"
	"ledger/service"
)

// TransactionHandler 交易记录处理器
type TransactionHandler struct{}

// NewTransactionHandler 创建交易记录处理器
func NewTransactionHandler() *TransactionHandler {
	return &TransactionHandler{}
}

// CreateTransactionRequest 创建交易请求
// fund_account_id 为辅助字段：支出指定资金来源账户时自动生成一条关联转账，
// 该字段不落库
type CreateTransactionRequest struct {
	Date            string          `json:"date" binding:"required" example:"2024-01-15 12:30:00"`
	Type            string          `json:"type" binding:"required" example:"EXPENSE"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category" example:"餐饮"`
	Tag             string          `json:"tag" binding:"omitempty,max=50"`
	Note            string          `json:"note" binding:"omitempty,max=255"`
	AccountID       uint            `json:"account_id" binding:"required"`
	TargetAccountID *uint           `json:"target_account_id"`
	FundAccountID   *uint           `json:"fund_account_id"`
	SortOrder       int             `json:"sort_order"`
}

// UpdateTransactionRequest 更新交易请求
type UpdateTransactionRequest struct {
	Date            string           `json:"date"`
	Type            string           `json:"type"`
	Amount          *decimal.Decimal `json:"amount"`
	Category        string           `json:"category" binding:"omitempty,max=50"`
	Tag             *string          `json:"tag" binding:"omitempty,max=50"`
	Note            *string          `json:"note" binding:"omitempty,max=255"`
	TargetAccountID *uint            `json:"target_account_id"`
	SortOrder       *int             `json:"sort_order"`
}

// TransactionOut 交易响应（附带账户名称）
type TransactionOut struct {
	models.Transaction
	AccountName       string  `json:"account_name"`
	TargetAccountName *string `json:"target_account_name,omitempty"`
}

// CreateTransactionResult 创建交易响应
type CreateTransactionResult struct {
	Transaction models.Transaction  `json:"transaction"`
	Linked      *models.Transaction `json:"linked,omitempty"` // 自动生成的关联转账
}

const dateLayout = "2006-01-02 15:04:05"

// Create 创建交易记录
// @Summary 创建交易记录
// @Description 创建收入、支出或转账记录。支出可携带 fund_account_id 指定资金来源账户，此时在同一事务内额外生成一条关联转账（资金账户 -> 支出账户，link_id 指向支出），两条记录要么都写入要么都不写入。
// @Tags 交易
// @Accept json
// @Produce json
// @Param request body CreateTransactionRequest true "交易信息"
// @Success 200 {object} Response{data=CreateTransactionResult} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	date, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
	if err != nil {
		BadRequest(c, "时间格式错误，应为: 2006-01-02 15:04:05")
		return
	}

	category := req.Category
	if category == "" {
		if req.Type != models.TransactionTypeTransfer {
			BadRequest(c, "分类不能为空")
			return
		}
		category = models.CategoryTransfer
	}

	txn, linked, err := service.CreateTransaction(database.DB, service.CreateTransactionInput{
		Date:            date,
		Type:            req.Type,
		Amount:          req.Amount,
		Category:        category,
		Tag:             req.Tag,
		Note:            req.Note,
		AccountID:       req.AccountID,
		TargetAccountID: req.TargetAccountID,
		FundAccountID:   req.FundAccountID,
		SortOrder:       req.SortOrder,
	})
	if err != nil {
		if service.IsValidationError(err) {
			BadRequest(c, err.Error())
			return
		}
		if isForeignKeyViolation(err) {
			BadRequest(c, "引用的账户不存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "创建交易失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", CreateTransactionResult{Transaction: *txn, Linked: linked})
}

// List 获取交易列表
// @Summary 获取交易列表
// @Description 获取交易记录，可按账户筛选（该账户作为转出或转入方的记录都返回）。排序：日期倒序，同日按手动排序值升序，再按ID倒序。
// @Tags 交易
// @Produce json
// @Param account_id query int false "账户筛选"
// @Param start_time query string false "开始日期 (2024-01-01)"
// @Param end_time query string false "结束日期 (2024-12-31)"
// @Success 200 {object} Response{data=[]TransactionOut} "获取成功"
// @Router /api/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	query := database.DB.Model(&models.Transaction{})

	if accountIDStr := c.Query("account_id"); accountIDStr != "" {
		accountID, err := strconv.ParseUint(accountIDStr, 10, 32)
		if err != nil {
			BadRequest(c, "无效的账户ID")
			return
		}
		query = query.Where("account_id = ? OR target_account_id = ?", uint(accountID), uint(accountID))
	}

	if startStr := c.Query("start_time"); startStr != "" {
		startTime, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
		if err == nil {
			query = query.Where("date >= ?", startTime)
		}
	}
	if endStr := c.Query("end_time"); endStr != "" {
		endTime, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
		if err == nil {
			// 包含结束日期当天
			endTime = endTime.Add(24*time.Hour - time.Second)
			query = query.Where("date <= ?", endTime)
		}
	}

	var txns []models.Transaction
	if err := query.Order(service.ListOrderClause).Find(&txns).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	out, err := attachAccountNames(txns)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, out)
}

// attachAccountNames 为交易列表补充账户名称（一次查询构建 id->name 映射）
func attachAccountNames(txns []models.Transaction) ([]TransactionOut, error) {
	var accounts []models.Account
	if err := database.DB.Find(&accounts).Error; err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(accounts))
	for _, a := range accounts {
		names[a.ID] = a.Name
	}

	out := make([]TransactionOut, 0, len(txns))
	for _, t := range txns {
		item := TransactionOut{Transaction: t, AccountName: names[t.AccountID]}
		if item.AccountName == "" {
			item.AccountName = "未知账户"
		}
		if t.TargetAccountID != nil {
			if name, ok := names[*t.TargetAccountID]; ok {
				item.TargetAccountName = &name
			}
		}
		out = append(out, item)
	}
	return out, nil
}

// Get 获取单条交易记录
// @Summary 获取单条交易记录
// @Tags 交易
// @Produce json
// @Param id path int true "交易ID"
// @Success 200 {object} Response{data=models.Transaction} "获取成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var txn models.Transaction
	if err := database.DB.First(&txn, uint(id64)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	Success(c, txn)
}

// Update 更新交易记录
// @Summary 更新交易记录
// @Description 更新指定交易。类型改为 TRANSFER 时同样要求转入账户存在且不同于转出账户。注意：编辑支出不会同步修改其关联转账的金额/日期，关联记录保持原值。
// @Tags 交易
// @Accept json
// @Produce json
// @Param id path int true "交易ID"
// @Param request body UpdateTransactionRequest true "交易信息"
// @Success 200 {object} Response{data=models.Transaction} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var txn models.Transaction
	if err := database.DB.First(&txn, uint(id64)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 计算更新后的类型和转入账户，套用与创建时相同的校验
	newType := txn.Type
	if req.Type != "" {
		if !models.IsValidTransactionType(req.Type) {
			BadRequest(c, service.ErrInvalidType.Error())
			return
		}
		newType = req.Type
	}
	newTarget := txn.TargetAccountID
	if req.TargetAccountID != nil {
		newTarget = req.TargetAccountID
	}

	updates := make(map[string]interface{})

	if newType == models.TransactionTypeTransfer {
		if newTarget == nil {
			BadRequest(c, service.ErrTransferTargetRequired.Error())
			return
		}
		if *newTarget == txn.AccountID {
			BadRequest(c, service.ErrTransferSameAccount.Error())
			return
		}
		if req.TargetAccountID != nil {
			updates["target_account_id"] = *req.TargetAccountID
		}
	} else {
		if req.TargetAccountID != nil {
			BadRequest(c, service.ErrTargetNotAllowed.Error())
			return
		}
		// 类型由 TRANSFER 改为其他时清除转入账户
		if txn.TargetAccountID != nil {
			updates["target_account_id"] = nil
		}
	}

	if req.Type != "" {
		updates["type"] = newType
	}
	if req.Date != "" {
		date, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
		if err != nil {
			BadRequest(c, "时间格式错误，应为: 2006-01-02 15:04:05")
			return
		}
		updates["date"] = date
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			BadRequest(c, service.ErrAmountNotPositive.Error())
			return
		}
		updates["amount"] = *req.Amount
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.Tag != nil {
		updates["tag"] = *req.Tag
	}
	if req.Note != nil {
		updates["note"] = *req.Note
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&txn).Updates(updates).Error; err != nil {
			if isForeignKeyViolation(err) {
				BadRequest(c, "引用的账户不存在")
				return
			}
			InternalError(c, SafeErrorMessage(err, "更新失败"))
			return
		}
	}

	database.DB.First(&txn, txn.ID)
	SuccessWithMessage(c, "更新成功", txn)
}

// Delete 删除交易记录
// @Summary 删除交易记录
// @Description 删除指定交易。若存在 link_id 指向该交易的关联转账（支出自动生成的资金转账），同一事务内一并删除；删除关联转账本身只删除该条记录。
// @Tags 交易
// @Produce json
// @Param id path int true "交易ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	if err := service.DeleteTransaction(database.DB, uint(id64)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "记录不存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}

// Reorder 批量调整交易排序
// @Summary 批量调整交易排序
// @Description 接收 (id, sort_order) 列表，逐条更新交易的手动排序值。各条更新相互独立，不保证整批原子性。
// @Tags 交易
// @Accept json
// @Produce json
// @Param request body []service.ReorderItem true "排序调整列表"
// @Success 200 {object} Response "调整成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/transactions/reorder [post]
func (h *TransactionHandler) Reorder(c *gin.Context) {
	var items []service.ReorderItem
	if err := c.ShouldBindJSON(&items); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	if len(items) == 0 {
		BadRequest(c, "排序列表不能为空")
		return
	}

	if err := service.Reorder(database.DB, items); err != nil {
		InternalError(c, SafeErrorMessage(err, "排序更新失败"))
		return
	}

	SuccessWithMessage(c, "排序已更新", nil)
}
