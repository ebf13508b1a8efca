package util

import (
	"context"
	"log"
	"strings"
	"time"

	"lumora-io/api/pkg/models"

	"github.com/cloudinary/cloudinary-go"
	"github.com/cloudinary/cloudinary-go/api/uploader"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New()

func init_cloudinary() (*cloudinary.Cloudinary, error) {
	cloudName := LoadEnvFor("CLOUDINARY_CLOUDNAME")
	apiKey := LoadEnvFor("CLOUDINARY_API_KEY")
	apiSecret := LoadEnvFor("CLOUDINARY_API_SECRET")
	//create cloudinary instance
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return &cloudinary.Cloudinary{}, err
	}

	return cld, nil
}

func ImageUploadHelper(input interface{}) (uploader.UploadResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Second)
	defer cancel()

	cld, err := init_cloudinary()
	if err != nil {
		return uploader.UploadResult{}, err
	}

	//upload file
	uploadFolder := LoadEnvFor("CLOUDINARY_UPLOAD_FOLDER")
	uploadRes, err := cld.Upload.Upload(ctx, input, uploader.UploadParams{Folder: uploadFolder})
	if err != nil {
		return uploader.UploadResult{}, err
	}

	return *uploadRes, nil
}

func ImageDeletionHelper(params uploader.DestroyParams) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Second)
	defer cancel()

	cld, err := init_cloudinary()
	if err != nil {
		return "", err
	}

	deleteResult, err := cld.Upload.Destroy(ctx, params)
	if err != nil {
		return "", err
	}
	return deleteResult.Result, nil
}

func FileUpload(file models.File) (uploader.UploadResult, error) {
	err := validate.Struct(file)
	if err != nil {
		return uploader.UploadResult{}, err
	}

	uploadRes, err := ImageUploadHelper(file.File)
	if err != nil {
		return uploader.UploadResult{}, err
	}

	return uploadRes, nil
}

func DestroyMedia(publicID string) (string, error) {
	if publicID == "" {
		return "", errors.New("missing public id")
	}

	res, err := ImageDeletionHelper(uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		log.Println(err)
		return "", err
	}
	return res, nil
}

// CloudinaryPublicID extracts the public id from a delivery URL so the asset
// can be destroyed later. Returns "" for URLs that are not Cloudinary upload
// URLs.
func CloudinaryPublicID(rawURL string) string {
	const marker = "/upload/"
	i := strings.Index(rawURL, marker)
	if i < 0 {
		return ""
	}

	path := rawURL[i+len(marker):]
	if j := strings.IndexByte(path, '?'); j >= 0 {
		path = path[:j]
	}

	// drop the version segment when present
	if rest, ok := strings.CutPrefix(path, "v"); ok {
		if k := strings.IndexByte(rest, '/'); k > 0 && isDigits(rest[:k]) {
			path = rest[k+1:]
		}
	}

	if k := strings.LastIndexByte(path, '.'); k > strings.LastIndexByte(path, '/') {
		path = path[:k]
	}
	return path
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
