package controllers

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"course-hub/config"
	"course-hub/gcs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadImage stores an admin-supplied image (course cover, slide,
// blog illustration) in GCS and returns its public URL.
func UploadImage(c *gin.Context) {
	if gcs.Client == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file required"})
		return
	}

	folder := c.DefaultPostForm("folder", "uploads")

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
		return
	}
	defer file.Close()

	url, err := uploadImageToGCS(file, fileHeader.Header.Get("Content-Type"), folder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}

func uploadImageToGCS(reader io.Reader, contentType, folder string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	bucket := config.AppConfig.GCSBucket

	extension := "jpg"
	switch strings.ToLower(contentType) {
	case "image/png":
		extension = "png"
	case "image/jpeg", "image/jpg":
		extension = "jpeg"
	case "image/gif":
		extension = "gif"
	case "image/webp":
		extension = "webp"
	default:
		log.Printf("Unsupported content type: %s, defaulting to .jpg", contentType)
	}

	objectName := fmt.Sprintf("%s/%s_%d.%s", folder, uuid.NewString(), time.Now().UnixNano(), extension)

	writer := gcs.Client.Bucket(bucket).Object(objectName).NewWriter(ctx)
	if contentType == "" {
		contentType = "image/jpeg"
	}
	writer.ContentType = contentType

	if _, err := io.Copy(writer, reader); err != nil {
		return "", fmt.Errorf("failed to copy file to GCS: %v", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close GCS writer: %v", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectName), nil
}
