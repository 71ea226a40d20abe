package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"ledger/config"
	"ledger/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init 初始化数据库连接
func Init(cfg *config.Config) error {
	var (
		dialector gorm.Dialector
		err       error
	)

	switch cfg.Database.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
			cfg.Database.Username,
			cfg.Database.Password,
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.DBName,
			cfg.Database.Charset,
		)
		dialector = mysql.Open(dsn)
	case "sqlite", "":
		if dir := filepath.Dir(cfg.Database.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("创建数据目录失败: %w", err)
			}
		}
		dialector = sqlite.Open(cfg.Database.Path)
	default:
		return fmt.Errorf("不支持的数据库驱动: %s", cfg.Database.Driver)
	}

	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	if cfg.Database.Driver == "mysql" {
		// 设置连接池参数
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	} else {
		// SQLite 单写者模型，串行访问避免 database is locked
		sqlDB.SetMaxOpenConns(1)
		// WAL 提升读并发；外键约束必须显式开启，账户/分类的级联删除依赖它
		if err := DB.Exec("PRAGMA journal_mode=WAL").Error; err != nil {
			return fmt.Errorf("设置 WAL 失败: %w", err)
		}
		if err := DB.Exec("PRAGMA foreign_keys=ON").Error; err != nil {
			return fmt.Errorf("开启外键约束失败: %w", err)
		}
	}

	// 自动迁移数据库表
	if err := DB.AutoMigrate(
		&models.Account{},
		&models.Category{},
		&models.Transaction{},
	); err != nil {
		return err
	}

	// 初始化默认分类（仅当表为空时）
	var catCount int64
	DB.Model(&models.Category{}).Count(&catCount)
	if catCount == 0 {
		seedDefaultCategories()
	}

	log.Println("数据库初始化成功")
	return nil
}

// seedDefaultCategories 写入默认分类树（一级分类 + 子分类）
func seedDefaultCategories() {
	defaults := []struct {
		Name     string
		Type     string
		Children []string
	}{
		{"餐饮", models.CategoryTypeExpense, []string{"早餐", "午餐", "晚餐", "饮料", "零食"}},
		{"交通", models.CategoryTypeExpense, []string{"地铁", "公交", "打车", "加油", "停车"}},
		{"购物", models.CategoryTypeExpense, []string{"服饰", "日用", "数码", "美妆"}},
		{"居住", models.CategoryTypeExpense, []string{"房租", "水电", "宽带", "物业"}},
		{"工资", models.CategoryTypeIncome, nil},
		{"理财", models.CategoryTypeIncome, []string{"利息", "基金", "股票"}},
	}

	for _, item := range defaults {
		parent := models.Category{Name: item.Name, Type: item.Type}
		if err := DB.Create(&parent).Error; err != nil {
			log.Printf("写入默认分类 %s 失败: %v", item.Name, err)
			continue
		}
		for _, childName := range item.Children {
			parentID := parent.ID
			child := models.Category{Name: childName, Type: item.Type, ParentID: &parentID}
			if err := DB.Create(&child).Error; err != nil {
				log.Printf("写入默认子分类 %s 失败: %v", childName, err)
			}
		}
	}
	log.Println("已写入默认分类")
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}
