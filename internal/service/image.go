package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/pantrychef/backend/config"
	"github.com/pantrychef/backend/internal/errs"
)

// imageRequest represents a request to the image generation API
type imageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	Quality        string `json:"quality"`
	ResponseFormat string `json:"response_format"`
}

// imageResponse represents the response from the image generation API
type imageResponse struct {
	Data []struct {
		URL string `json:"url,omitempty"`
	} `json:"data"`
}

// ImageService generates a photo for a finished recipe and optionally
// re-hosts it in S3.
type ImageService struct {
	apiKey   string
	apiURL   string
	s3Config *config.S3Config
	client   *http.Client
}

// NewImageService creates an ImageService; s3Config may be nil, in which
// case generated images keep the provider URL.
func NewImageService(cfg *config.Config, s3Config *config.S3Config) *ImageService {
	return &ImageService{
		apiKey:   cfg.ImageAPIKey,
		apiURL:   cfg.ImageAPIURL,
		s3Config: s3Config,
		client:   &http.Client{Timeout: cfg.ProviderTimeout},
	}
}

// GenerateRecipeImage generates an image for a recipe from its title and
// cuisine.
func (s *ImageService) GenerateRecipeImage(ctx context.Context, title, cuisine string) (string, error) {
	prompt := fmt.Sprintf(
		"Professional food photography of %s, %s cuisine, on a beautiful plate, restaurant quality, high resolution, detailed",
		title, cuisine)

	reqBody := imageRequest{
		Model:          "dall-e-3",
		Prompt:         prompt,
		N:              1,
		Size:           "1024x1024",
		Quality:        "standard",
		ResponseFormat: "url",
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", errs.Upstream("image", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.Upstream("image", fmt.Errorf("failed to read response: %w", err))
	}
	if resp.StatusCode != http.StatusOK {
		return "", errs.Upstream("image", fmt.Errorf("status %d: %s", resp.StatusCode, string(body)))
	}

	var result imageResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", errs.Upstream("image", fmt.Errorf("failed to decode response: %w", err))
	}
	if len(result.Data) == 0 || result.Data[0].URL == "" {
		return "", errs.Upstream("image", fmt.Errorf("no image data in response"))
	}

	imageURL := result.Data[0].URL

	if s.s3Config != nil {
		s3URL, err := s.downloadAndUploadToS3(ctx, imageURL)
		if err != nil {
			log.Printf("[ImageService] failed to upload to S3, returning provider URL: %v", err)
			return imageURL, nil
		}
		return s3URL, nil
	}

	return imageURL, nil
}

// downloadAndUploadToS3 downloads an image from URL and uploads it to S3
func (s *ImageService) downloadAndUploadToS3(ctx context.Context, imageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download image, status: %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image data: %w", err)
	}

	fileName := fmt.Sprintf("recipe-images/%s.png", uuid.New().String())

	_, err = s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String("image/png"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, fileName), nil
}
