package main

import (
	"log"
	"net/http"
	"os"

	"github.com/SchoolHub/api-school/internal/academicmonth"
	"github.com/SchoolHub/api-school/internal/auth"
	"github.com/SchoolHub/api-school/internal/coursefee"
	"github.com/SchoolHub/api-school/internal/duebalance"
	"github.com/SchoolHub/api-school/internal/examschedule"
	"github.com/SchoolHub/api-school/internal/feestructure"
	"github.com/SchoolHub/api-school/internal/markentry"
	"github.com/SchoolHub/api-school/internal/payment"
	"github.com/SchoolHub/api-school/internal/student"
	"github.com/SchoolHub/api-school/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, using process environment")
	}

	database, err := db.Connect()
	if err != nil {
		log.Fatal("could not connect to database:", err)
	}

	if err := database.AutoMigrate(
		&student.Student{},
		&academicmonth.AcademicMonth{},
		&feestructure.FeeStructure{},
		&coursefee.CourseFee{},
		&coursefee.CourseFeeDetail{},
		&payment.Payment{},
		&payment.PaymentDetail{},
		&duebalance.DueBalance{},
		&examschedule.ExamType{},
		&examschedule.ExamSubject{},
		&examschedule.ExamSchedule{},
		&markentry.MarkEntry{},
		&auth.StaffAccount{},
	); err != nil {
		log.Fatal("auto-migrate failed:", err)
	}

	if err := academicmonth.Seed(database); err != nil {
		log.Fatal("seeding academic months failed:", err)
	}

	// Handlers
	authHandler := auth.NewHandler(database)
	studentHandler := student.NewHandler(database)
	monthHandler := academicmonth.NewHandler(database)
	feeStructureHandler := feestructure.NewHandler(database)
	courseFeeHandler := coursefee.NewHandler(coursefee.NewRepository(database))
	paymentHandler := payment.NewHandler(payment.NewRepository(database))
	dueBalanceHandler := duebalance.NewHandler(database)
	examScheduleHandler := examschedule.NewHandler(database)
	markEntryHandler := markentry.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// Auth routes
	r.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Student routes
	r.HandleFunc("/students", studentHandler.Create).Methods("POST")
	r.HandleFunc("/students", studentHandler.List).Methods("GET")
	r.HandleFunc("/students/{id}", studentHandler.Get).Methods("GET")
	r.HandleFunc("/students/{id}", studentHandler.Update).Methods("PUT")
	r.HandleFunc("/students/{id}", studentHandler.Delete).Methods("DELETE")

	// Academic month reference data
	r.HandleFunc("/academic-months", monthHandler.List).Methods("GET")

	// Fee structure routes
	r.HandleFunc("/fee-structures", feeStructureHandler.Create).Methods("POST")
	r.HandleFunc("/fee-structures", feeStructureHandler.List).Methods("GET")
	r.HandleFunc("/fee-structures/{id}", feeStructureHandler.Get).Methods("GET")
	r.HandleFunc("/fee-structures/{id}", feeStructureHandler.Update).Methods("PUT")
	r.HandleFunc("/fee-structures/{id}", feeStructureHandler.Delete).Methods("DELETE")

	// Course fee routes
	r.HandleFunc("/course-fees", courseFeeHandler.Create).Methods("POST")
	r.HandleFunc("/course-fees", courseFeeHandler.List).Methods("GET")
	r.HandleFunc("/course-fees/{id}", courseFeeHandler.Get).Methods("GET")
	r.HandleFunc("/course-fees/{id}", courseFeeHandler.Update).Methods("PUT")
	r.HandleFunc("/course-fees/{id}", courseFeeHandler.Delete).Methods("DELETE")

	// Payment routes
	r.HandleFunc("/payments", paymentHandler.Create).Methods("POST")
	r.HandleFunc("/payments", paymentHandler.List).Methods("GET")
	r.HandleFunc("/payments/{id}", paymentHandler.Get).Methods("GET")
	r.HandleFunc("/payments/{id}", paymentHandler.Update).Methods("PUT")
	r.HandleFunc("/payments/{id}", paymentHandler.Delete).Methods("DELETE")

	// Due balance routes
	r.HandleFunc("/due-balances", dueBalanceHandler.List).Methods("GET")
	r.HandleFunc("/due-balances/students/{id}", dueBalanceHandler.GetByStudent).Methods("GET")

	// Exam routes
	r.HandleFunc("/exam-types", examScheduleHandler.CreateType).Methods("POST")
	r.HandleFunc("/exam-types", examScheduleHandler.ListTypes).Methods("GET")
	r.HandleFunc("/exam-subjects", examScheduleHandler.CreateSubject).Methods("POST")
	r.HandleFunc("/exam-subjects", examScheduleHandler.ListSubjects).Methods("GET")
	r.HandleFunc("/exam-schedules", examScheduleHandler.Create).Methods("POST")
	r.HandleFunc("/exam-schedules", examScheduleHandler.List).Methods("GET")
	r.HandleFunc("/exam-schedules/{id}", examScheduleHandler.Get).Methods("GET")
	r.HandleFunc("/exam-schedules/{id}", examScheduleHandler.Update).Methods("PUT")
	r.HandleFunc("/exam-schedules/{id}", examScheduleHandler.Delete).Methods("DELETE")

	// Mark entry routes require a staff token
	marks := r.PathPrefix("/mark-entries").Subrouter()
	marks.Use(auth.RequireAuth)
	marks.HandleFunc("", markEntryHandler.Create).Methods("POST")
	marks.HandleFunc("", markEntryHandler.List).Methods("GET")
	marks.HandleFunc("/{id}", markEntryHandler.Get).Methods("GET")
	marks.HandleFunc("/{id}", markEntryHandler.Update).Methods("PUT")
	marks.HandleFunc("/{id}", markEntryHandler.Delete).Methods("DELETE")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Println("listening on", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
