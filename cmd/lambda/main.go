package main

import (
	"nfarinati_checkout/internal/adapter/http/routes"
	lambdaadapter "nfarinati_checkout/internal/adapter/lambda"
	"nfarinati_checkout/internal/config"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	router := routes.NewRouter(config.Load())
	lambda.Start(lambdaadapter.New(router).Handle)
}
