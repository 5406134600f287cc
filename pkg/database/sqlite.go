package database

import (
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 初始化本地持久层（会话、表单草稿等落在这里）
// dsn: sqlite 文件路径，测试可用 ":memory:"
// models: 需要自动建表/迁移的结构体指针
func InitDB(dsn string, models ...interface{}) *gorm.DB {
	// 开发环境打印所有 SQL，方便调试
	dbLogger := logger.Default.LogMode(logger.Warn)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: dbLogger,
	})
	if err != nil {
		log.Fatalf("[DB] 本地数据库打开失败: %v", err)
	}

	// sqlite 单写者，连接池保持小规模即可
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("[DB] 获取底层 SQL DB 失败: %v", err)
	}
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			log.Fatalf("[DB] 自动建表出错: %v", err)
		}
	}

	log.Println("[DB] 本地数据库就绪")
	return db
}
