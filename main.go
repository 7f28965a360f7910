package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"classroom-service/internal/auth"
	"classroom-service/internal/config"
	"classroom-service/internal/db"
	"classroom-service/internal/event"
	"classroom-service/internal/handlers"
	"classroom-service/internal/repository"
	"classroom-service/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.New()

	mongoClient, err := db.ConnectMongo(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	defer func() {
		if err := db.DisconnectMongo(mongoClient); err != nil {
			log.Printf("mongo disconnect: %v", err)
		}
	}()
	database := mongoClient.Database(cfg.MongoDatabase)

	redisClient, err := db.ConnectRedis(context.Background(), cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()

	// RabbitMQ event publisher; a nil publisher is a silent no-op.
	var publisher *event.Publisher
	if cfg.RabbitMQURI != "" && cfg.RabbitExchange != "" {
		publisher, err = event.NewPublisher(cfg.RabbitMQURI, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("rabbitmq: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, classroom events will not be published")
	}

	jwtManager, err := auth.NewManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("jwt: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(database)
	if err := userRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("mongo indexes: %v", err)
	}
	classroomRepo := repository.NewClassroomRepository(database)
	rosterRepo := repository.NewRosterRepository(database)
	checkinRepo := repository.NewCheckinRepository(database)
	presenceRepo := repository.NewPresenceRepository(database)
	scoreRepo := repository.NewScoreRepository(database)
	questionRepo := repository.NewQuestionRepository(database)
	answerRepo := repository.NewAnswerRepository(database)
	tokenRepo := repository.NewTokenRepository(redisClient)

	// Services
	accountService := service.NewAccountService(userRepo, tokenRepo, jwtManager)
	classroomService := service.NewClassroomService(classroomRepo, cfg.PublicBaseURL)
	rosterService := service.NewRosterService(rosterRepo, classroomRepo)
	checkinService := service.NewCheckinService(checkinRepo, presenceRepo, scoreRepo, classroomRepo, cfg.PublicBaseURL)
	questionService := service.NewQuestionService(questionRepo, classroomRepo)
	gradingService := service.NewGradingService(answerRepo, questionRepo, rosterRepo, scoreRepo, classroomRepo)

	// Handlers
	accountHandler := handlers.NewAccountHandler(accountService)
	classroomHandler := handlers.NewClassroomHandler(classroomService)
	rosterHandler := handlers.NewRosterHandler(rosterService)
	checkinHandler := handlers.NewCheckinHandler(checkinService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	gradingHandler := handlers.NewGradingHandler(gradingService)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	public := r.Group("/public/classroom")
	{
		public.POST("/account/register", accountHandler.Register)
		public.POST("/account/login", accountHandler.Login)
	}

	protected := r.Group("/protected/classroom")
	protected.Use(auth.RequireAuth(jwtManager, tokenRepo))
	{
		protected.POST("/account/logout", accountHandler.Logout)
		protected.GET("/account/me", accountHandler.Me)
		protected.PUT("/account/profile", accountHandler.UpdateProfile)

		// Student flows
		protected.POST("/register", func(c *gin.Context) {
			rosterHandler.Register(c)
			if c.Writer.Status() == http.StatusCreated {
				publisher.Publish("classroom.student.registered", gin.H{
					"student_id": auth.FromContext(c).UserID,
					"timestamp":  time.Now(),
				})
			}
		})
		protected.GET("/registered", rosterHandler.MyClassrooms)
		protected.GET("/:id/registration", rosterHandler.MyRegistration)
		protected.POST("/scan", func(c *gin.Context) {
			checkinHandler.Scan(c)
			if c.Writer.Status() == http.StatusCreated {
				publisher.Publish("classroom.checkin.scan", gin.H{
					"student_id": auth.FromContext(c).UserID,
					"timestamp":  time.Now(),
				})
			}
		})
		protected.GET("/:id/checkin/:checkinId/questions", questionHandler.ListVisible)
		protected.POST("/:id/checkin/:checkinId/question/:number/answer", func(c *gin.Context) {
			gradingHandler.SubmitAnswer(c)
			if c.Writer.Status() == http.StatusCreated {
				publisher.Publish("classroom.answer.submitted", gin.H{
					"classroom_id": c.Param("id"),
					"checkin_id":   c.Param("checkinId"),
					"question_no":  c.Param("number"),
					"timestamp":    time.Now(),
				})
			}
		})
	}

	instructor := protected.Group("")
	instructor.Use(auth.RequireInstructor())
	{
		instructor.POST("", func(c *gin.Context) {
			classroomHandler.Create(c)
			if c.Writer.Status() == http.StatusCreated {
				publisher.Publish("classroom.created", gin.H{
					"owner":     auth.FromContext(c).UserID,
					"timestamp": time.Now(),
				})
			}
		})
		instructor.GET("", classroomHandler.ListOwned)
		instructor.GET("/:id", classroomHandler.Get)
		instructor.PUT("/:id/info", classroomHandler.UpdateInfo)
		instructor.GET("/:id/register-qr", classroomHandler.RegisterQR)
		instructor.GET("/:id/register-link", classroomHandler.RegisterLink)

		instructor.GET("/:id/roster", rosterHandler.List)
		instructor.POST("/:id/roster/:studentId/confirm", func(c *gin.Context) {
			rosterHandler.Confirm(c)
			if c.Writer.Status() == http.StatusOK {
				publisher.Publish("classroom.student.confirmed", gin.H{
					"classroom_id": c.Param("id"),
					"student_id":   c.Param("studentId"),
					"timestamp":    time.Now(),
				})
			}
		})

		instructor.POST("/:id/checkin", func(c *gin.Context) {
			checkinHandler.Create(c)
			if c.Writer.Status() == http.StatusCreated {
				publisher.Publish("classroom.checkin.created", gin.H{
					"classroom_id": c.Param("id"),
					"timestamp":    time.Now(),
				})
			}
		})
		instructor.GET("/:id/checkin", checkinHandler.List)
		instructor.GET("/:id/checkin/:checkinId", checkinHandler.Get)
		instructor.PUT("/:id/checkin/:checkinId/status", func(c *gin.Context) {
			checkinHandler.SetStatus(c)
			if c.Writer.Status() == http.StatusOK {
				publisher.Publish("classroom.checkin.status", gin.H{
					"classroom_id": c.Param("id"),
					"checkin_id":   c.Param("checkinId"),
					"timestamp":    time.Now(),
				})
			}
		})
		instructor.GET("/:id/checkin/:checkinId/qr", checkinHandler.QR)
		instructor.GET("/:id/checkin/:checkinId/attendance", checkinHandler.Attendance)
		instructor.GET("/:id/checkin/:checkinId/scores", checkinHandler.Scores)

		instructor.POST("/:id/checkin/:checkinId/question", questionHandler.Create)
		instructor.GET("/:id/checkin/:checkinId/question", questionHandler.ListAll)
		instructor.GET("/:id/checkin/:checkinId/question/next-number", questionHandler.NextNumber)
		instructor.GET("/:id/checkin/:checkinId/question/:number", questionHandler.Get)
		instructor.PUT("/:id/checkin/:checkinId/question/:number", questionHandler.Update)
		instructor.DELETE("/:id/checkin/:checkinId/question/:number", questionHandler.Delete)

		instructor.GET("/:id/checkin/:checkinId/question/:number/answers", gradingHandler.Answers)
		instructor.POST("/:id/checkin/:checkinId/question/:number/scores", func(c *gin.Context) {
			gradingHandler.SaveScores(c)
			if c.Writer.Status() == http.StatusOK {
				publisher.Publish("classroom.score.saved", gin.H{
					"classroom_id": c.Param("id"),
					"checkin_id":   c.Param("checkinId"),
					"question_no":  c.Param("number"),
					"timestamp":    time.Now(),
				})
			}
		})
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("classroom-service listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	<-shutdownChan
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
	}
	log.Println("Server shutdown complete")
}
