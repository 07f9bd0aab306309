// @title           1nFloU API
// @version         1.0
// @description     Регистрация брендов и инфлюенсеров, вход и форма обратной связи сайта 1nFloU.
// @contact.name    1nFloU
// @contact.email   info@detwet.com
// @host            localhost:5000
// @BasePath        /

package main

import (
	"inflou_backend/internal/app"

	_ "inflou_backend/docs"
)

func main() {
	app.Run()
}
