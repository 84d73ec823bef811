package main

import (
	"log"
	"net/http"
	"os"

	"github.com/tokosembilan/go-commerce/app/cmd"
	"github.com/tokosembilan/go-commerce/app/configs"
	"github.com/tokosembilan/go-commerce/app/routes"
)

func main() {
	configs.InitMidtransClient()

	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	router := routes.NewRouter(db)

	server := http.Server{
		Addr:    configs.LoadENV.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("server stopped:", err)
	}
}
