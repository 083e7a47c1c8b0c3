package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"clinicportal/internal/apiclient"
	"clinicportal/internal/auth"
	"clinicportal/internal/config"
	"clinicportal/internal/service"
)

// SeedDoctor is one entry of the seed file.
type SeedDoctor struct {
	Name           string   `json:"name" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	Phone          string   `json:"phone" validate:"required"`
	Password       string   `json:"password" validate:"required"`
	Specialty      string   `json:"specialty" validate:"required"`
	AvailableTimes []string `json:"availableTimes"`
}

func (d SeedDoctor) form() service.DoctorForm {
	return service.DoctorForm{
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		Password:  d.Password,
		Specialty: d.Specialty,
		Times:     strings.Join(d.AvailableTimes, ","),
	}
}

func main() {
	source := flag.String("source", "doctors.json", "path or http(s) URL of a JSON array of doctors")
	username := flag.String("username", os.Getenv("SEED_ADMIN_USERNAME"), "admin username")
	password := flag.String("password", os.Getenv("SEED_ADMIN_PASSWORD"), "admin password")
	flag.Parse()

	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()
	backend := apiclient.New(cfg.APIBaseURL, &http.Client{Timeout: cfg.APITimeout})

	log.Printf("Reading doctors from: %s", *source)
	doctors, err := readDoctors(*source)
	if err != nil {
		log.Fatalf("Failed to read doctors: %v", err)
	}
	log.Printf("Read %d doctors", len(doctors))

	// The seed runs its own short lived session
	jwtService := auth.NewJWTService(cfg.SessionSecret)
	sessions := auth.NewSessionManager(auth.NewMemorySessionStore(), jwtService, 0)
	audit := service.NewAuditService(nil)
	login := service.NewLoginService(backend, sessions, audit)
	doctorService := service.NewDoctorService(backend, audit)

	ctx := context.Background()
	result, err := login.Login(ctx, "admin", service.Credentials{Identifier: *username, Password: *password})
	if err != nil {
		log.Fatalf("Admin login failed: %v", err)
	}
	defer func() {
		if err := login.Logout(ctx, result.Session); err != nil {
			log.Printf("logout: %v", err)
		}
	}()

	validate := validator.New()
	added, skipped := 0, 0
	for _, doctor := range doctors {
		if err := validate.Struct(doctor); err != nil {
			log.Printf("Skipping doctor %q: %v", doctor.Email, err)
			skipped++
			continue
		}
		msg, err := doctorService.Add(ctx, result.Session, doctor.form())
		if err != nil {
			log.Printf("Failed to add doctor %q: %v", doctor.Email, err)
			skipped++
			continue
		}
		log.Printf("%s (%s)", msg, doctor.Email)
		added++
	}

	log.Printf("Seed completed")
	log.Printf("  - Doctors added: %d", added)
	log.Printf("  - Doctors skipped: %d", skipped)
}

// readDoctors loads the seed list from a local file or an http(s) URL.
func readDoctors(source string) ([]SeedDoctor, error) {
	var body []byte
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", source, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%s returned status code: %d", source, resp.StatusCode)
		}
		if body, err = io.ReadAll(resp.Body); err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}
	} else {
		var err error
		if body, err = os.ReadFile(source); err != nil {
			return nil, err
		}
	}

	var doctors []SeedDoctor
	if err := json.Unmarshal(body, &doctors); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return doctors, nil
}
