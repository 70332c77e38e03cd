package main

// @title Jewelshop APIs
// @version 1.0
// @description Catalog API for the jewelry storefront.

// @host localhost:3000
// @BasePath /
// @schemes http
import (
	_ "jewelshop/docs"
	protocol "jewelshop/protocal"

	_ "github.com/arsmn/fiber-swagger/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	err := protocol.ServeHTTP()
	if err != nil {
		logrus.Println(err)
	}
}
