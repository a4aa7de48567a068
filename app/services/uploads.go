package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/phanumatwang/finance-dashboard/app/config"
)

// UploadAttachment pushes a multipart file to Cloudinary and returns the
// durable URL. Folder separates proof-of-payment images from receipts and
// check-in photos.
func UploadAttachment(file *multipart.FileHeader, folder string) (string, error) {
	cloudinaryURL := config.AppConfig.CloudinaryURL
	if cloudinaryURL == "" {
		return "", fmt.Errorf("CLOUDINARY_URL is not configured")
	}

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return "", fmt.Errorf("failed to initialize cloudinary: %v", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %v", err)
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:   folder,
		PublicID: fmt.Sprintf("%d-%s", time.Now().UnixMilli(), file.Filename),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %v", err)
	}

	return result.SecureURL, nil
}
