package handlers

import (
	"errors"
	"fmt"
	"material-site/app/server/constants"
	"strings"
	"unicode/utf8"
)

type ListMaterialsQuery struct {
	Skip  *int `query:"skip"`
	Limit *int `query:"limit"`
}

type MaterialIDParam struct {
	ID uint `param:"id"`
}

type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (r *LoginForm) Validate() error {
	r.Username = strings.TrimSpace(r.Username)

	if r.Username == "" || r.Password == "" {
		return errors.New("username and password are required")
	}

	return nil
}

type AddMaterialForm struct {
	Title    string `form:"title"`
	Content  string `form:"content"`
	Category string `form:"category"`
}

func (r *AddMaterialForm) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.Category = strings.TrimSpace(r.Category)

	if r.Title == "" {
		return errors.New("title is required")
	}
	if utf8.RuneCountInString(r.Title) > constants.MaterialTitleMaxLength {
		return fmt.Errorf("title should be at most %d characters", constants.MaterialTitleMaxLength)
	}
	if strings.TrimSpace(r.Content) == "" {
		return errors.New("content is required")
	}
	if utf8.RuneCountInString(r.Category) > constants.MaterialCategoryMaxLen {
		return fmt.Errorf("category should be at most %d characters", constants.MaterialCategoryMaxLen)
	}

	return nil
}
