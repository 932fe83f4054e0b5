package store

import (
	"errors"
	"fmt"
	"gorm.io/gorm"
	"material-site/app/server/models"
)

type Hasher interface {
	Hash(plaintext string) (string, error)
}

// FindUserByName 找不到时返回 nil, nil
func FindUserByName(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user %q: %w", username, err)
	}

	return &user, nil
}

// CreateUser 只储存密码的 hash ；用户名重复时返回数据库的约束错误
func CreateUser(db *gorm.DB, h Hasher, username string, password string) (*models.User, error) {
	if username == "" {
		return nil, errors.New("username is empty")
	}

	// 处理密码
	passwordHash, err := h.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: passwordHash,
		IsActive:     true,
	}
	if err = db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user %q: %w", username, err)
	}

	return &user, nil
}

// EnsureUser 在用户不存在时创建，已存在的用户不做任何修改
func EnsureUser(db *gorm.DB, h Hasher, username string, password string) (bool, error) {
	user, err := FindUserByName(db, username)
	if err != nil {
		return false, err
	} else if user != nil {
		return false, nil
	}

	if _, err = CreateUser(db, h, username, password); err != nil {
		return false, err
	}

	return true, nil
}
