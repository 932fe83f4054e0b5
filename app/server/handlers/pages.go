package handlers

import "material-site/app/server/models"

// 模板使用的数据

type Page struct {
	Title string
	User  *models.User // 匿名时为 nil
}

type listPage struct {
	Page
	Materials []models.Material
}

type detailPage struct {
	Page
	Material  *models.Material
	Materials []models.Material
}

type loginPage struct {
	Page
	Error    string
	Username string
}

type dashboardPage struct {
	Page
	Materials []models.Material
	Total     int64
}

type errorPage struct {
	Page
	Code    int
	Message string
}
