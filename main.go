package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/adityapw/ktp-ocr-service/client"
	"github.com/adityapw/ktp-ocr-service/config"
	"github.com/adityapw/ktp-ocr-service/extractor"
	"github.com/adityapw/ktp-ocr-service/handler"
	"github.com/adityapw/ktp-ocr-service/service"
	"github.com/adityapw/ktp-ocr-service/storage"
)

func main() {
	ctx := context.Background()

	// Initialize configuration
	cfg := config.LoadConfig()

	// Primary OCR provider: Google Vision. Optional; the service runs on
	// PaddleOCR alone when credentials are missing.
	var primary service.TokenProvider
	if cfg.GoogleCredentialsPath != "" {
		visionClient, err := client.NewVisionClient(ctx, cfg.GoogleCredentialsPath)
		if err != nil {
			log.Printf("Warning: Google Vision initialization failed: %v. Using PaddleOCR only.", err)
		} else {
			primary = visionClient
		}
	} else {
		log.Println("GOOGLE_CLOUD_CREDENTIALS_PATH not set, using PaddleOCR only")
	}

	paddleClient := client.NewPaddleClient(cfg.PaddleAPIURL)
	ocrService := service.NewSmartOCRService(primary, paddleClient)

	// Core pipeline
	pdfProcessor := service.NewPDFProcessor()
	ktpExtractor := extractor.New(extractor.Config{
		RowBandPx:         cfg.RowBandPx,
		AngleToleranceDeg: cfg.AngleToleranceDeg,
	})
	ktpService := service.NewKTPService(ocrService, pdfProcessor, ktpExtractor)

	// Signature storage. Optional; the signature endpoint errors without it.
	var store storage.Client
	if cfg.GCSBucket != "" {
		gcsClient, err := storage.NewGCSClient(ctx, cfg.GCSBucket, cfg.GoogleCredentialsPath)
		if err != nil {
			log.Printf("Warning: GCS initialization failed: %v. Signature uploads disabled.", err)
		} else {
			store = gcsClient
			defer gcsClient.Close()
		}
	}
	signatureService := service.NewSignatureService(store)

	// Initialize handler layer
	ktpHandler := handler.NewKTPHandler(ktpService, cfg.MaxFileSize, cfg.AllowedExtensions)
	signatureHandler := handler.NewSignatureHandler(signatureService, cfg.MaxFileSize, cfg.AllowedExtensions)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"service":   "KTP OCR Extraction",
			"providers": ocrService.Status(),
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		ktp := api.Group("/ktp")
		{
			ktp.POST("/extract", ktpHandler.ExtractKTP)
			ktp.POST("/signature", signatureHandler.ExtractSignature)
		}
	}

	// Start server
	log.Printf("Starting KTP OCR Extraction Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
