package main

import (
	auth "Voltex/internal/auth"
	batch "Voltex/internal/calc/batch"
	cable "Voltex/internal/calc/cable"
	importer "Voltex/internal/calc/importer"
	ohm "Voltex/internal/calc/ohm"
	report "Voltex/internal/calc/report"
	tablesh "Voltex/internal/calc/tables"
	wire "Voltex/internal/calc/wire"
	profile "Voltex/internal/profile"
	repo "Voltex/internal/repo"
	"context"
	"database/sql"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresDB(db)
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file, using environment as-is")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	profileH := &profile.ProfileHandler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	// Reference tables are public read-only data.
	tablesH := &tablesh.Handler{}
	api.HandleFunc("/tables/materials", tablesH.Materials).Methods("GET")
	api.HandleFunc("/tables/ratings", tablesH.Ratings).Methods("GET")
	api.HandleFunc("/tables/temp-factors", tablesH.TempFactors).Methods("GET")
	api.HandleFunc("/tables/core-factors", tablesH.CoreFactors).Methods("GET")
	api.HandleFunc("/tables/catalog", tablesH.Catalog).Methods("GET")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/defaults", profileH.UpdateDefaults).Methods("PATCH", "PUT")
	secureApi.HandleFunc("/history", profileH.History).Methods("GET")
	secureApi.HandleFunc("/history/cable", profileH.SaveSizing).Methods("POST")

	ohmH := &ohm.Handler{}
	cableH := &cable.Handler{}
	wireH := &wire.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	reportH := &report.Handler{}

	secureApi.HandleFunc("/tools/ohm/calc", ohmH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/cable/calc", cableH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/cable/resistance", cableH.CalcResistance).Methods("POST")
	secureApi.HandleFunc("/tools/wire/calc", wireH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/cable/batch", batchH.Sizing).Methods("POST")
	secureApi.HandleFunc("/tools/cable/import", importerH.Sizing).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	HandleList(mux, db)
	handler := CORS(mux)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	certFile := os.Getenv("CERT_FILE")
	keyFile := os.Getenv("KEY_FILE")

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Println("Starting server on", addr)
		var err error
		if certFile != "" && keyFile != "" {
			err = server.ListenAndServeTLS(certFile, keyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
