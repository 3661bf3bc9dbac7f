// @title           Job Board API
// @version         1.0
// @description     API для доски вакансий: работодатели, соискатели, отклики и профили.
// @host            localhost:4000
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "jobboard_backend/internal/app"

func main() {
	app.Run()
}
