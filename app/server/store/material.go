// Package store 包含对数据库记录的读写操作。
// 所有函数都接收当前请求范围内的 *gorm.DB ，由调用方负责获取与释放连接。
package store

import (
	"errors"
	"fmt"
	"gorm.io/gorm"
	"material-site/app/server/constants"
	"material-site/app/server/models"
)

// ListMaterials 按创建时间倒序返回窗口内的材料，窗口越界时返回空列表
func ListMaterials(db *gorm.DB, skip int, limit int) ([]models.Material, error) {
	if skip < 0 {
		skip = constants.PaginationDefaultSkip
	}
	if limit <= 0 {
		limit = constants.PaginationDefaultLimit
	}

	materials := []models.Material{}
	if err := db.
		Model(&models.Material{}).
		Order("created_at DESC").
		Order("id DESC").
		Offset(skip).
		Limit(limit).
		Find(&materials).Error; err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}

	return materials, nil
}

func CountMaterials(db *gorm.DB) (int64, error) {
	var count int64
	if err := db.Model(&models.Material{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count materials: %w", err)
	}

	return count, nil
}

// GetMaterial 找不到时返回 nil, nil
func GetMaterial(db *gorm.DB, id uint) (*models.Material, error) {
	var material models.Material
	if err := db.First(&material, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material %d: %w", id, err)
	}

	return &material, nil
}

func CreateMaterial(db *gorm.DB, title string, content string, category string) (*models.Material, error) {
	if category == "" {
		category = constants.MaterialDefaultCategory
	}

	// created_at 与 updated_at 由 gorm 填写
	material := models.Material{
		Title:    title,
		Content:  content,
		Category: category,
	}
	if err := db.Create(&material).Error; err != nil {
		return nil, fmt.Errorf("create material: %w", err)
	}

	return &material, nil
}

// DeleteMaterial 删除并返回删除前的记录；记录不存在时返回 nil, nil ，重复调用是安全的
func DeleteMaterial(db *gorm.DB, id uint) (*models.Material, error) {
	var deleted *models.Material

	err := db.Transaction(func(tx *gorm.DB) error {
		var material models.Material
		if err := tx.First(&material, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if err := tx.Delete(&models.Material{}, material.ID).Error; err != nil {
			return err
		}

		deleted = &material
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("delete material %d: %w", id, err)
	}

	return deleted, nil
}
