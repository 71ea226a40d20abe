package service

import (
	"gorm.io/gorm"

	"ledger/models"
)

// ListOrderClause 交易列表的三级排序：日期倒序（最新在前），同日按
// 手动排序值升序，排序值也相同时按 id 倒序（后插入的在前）
const ListOrderClause = "date DESC, sort_order ASC, id DESC"

// ReorderItem 单条排序调整
type ReorderItem struct {
	ID        uint `json:"id" binding:"required"`
	SortOrder int  `json:"sort_order"`
}

// Reorder 批量调整同日交易的手动排序值
// 每条更新相互独立，不要求整批原子性；出错时已生效的更新保留，
// 返回第一个错误
func Reorder(db *gorm.DB, items []ReorderItem) error {
	for _, item := range items {
		if err := db.Model(&models.Transaction{}).
			Where("id = ?", item.ID).
			Update("sort_order", item.SortOrder).Error; err != nil {
			return err
		}
	}
	return nil
}
