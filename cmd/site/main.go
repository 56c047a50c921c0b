package main

import (
	"EsquadrilhaSite/internal/bootstrap"
	pkg "EsquadrilhaSite/pkg/routes"

	"go.uber.org/fx"
)

func main() {
	bootstrap.Loadenv()
	app := fx.New(
		pkg.EchoModules,
	)

	app.Run()
}
