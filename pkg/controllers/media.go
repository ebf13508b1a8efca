package controllers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"sync"

	"lumora-io/api/internal/common"
	"lumora-io/api/pkg/models"
	"lumora-io/api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// UploadImages pushes the uploaded files to Cloudinary concurrently and
// returns their secure URLs in one response. Any failed upload fails the
// whole request.
func UploadImages() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
			util.HandleError(c, http.StatusBadRequest, err)
			return
		}

		form := c.Request.MultipartForm
		if form == nil || len(form.File["images"]) == 0 {
			util.HandleError(c, http.StatusBadRequest, errors.New("no image files provided"))
			return
		}

		headers := form.File["images"]
		if len(headers) > common.MAX_ITEM_IMAGES {
			util.HandleError(c, http.StatusBadRequest, errors.Errorf("at most %d images per upload", common.MAX_ITEM_IMAGES))
			return
		}

		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			urls = make([]string, len(headers))
			errs []error
		)

		for i, header := range headers {
			wg.Add(1)
			go func(idx int, header *multipart.FileHeader) {
				defer wg.Done()

				file, err := header.Open()
				if err != nil {
					mu.Lock()
					errs = append(errs, fmt.Errorf("error opening %s: %w", header.Filename, err))
					mu.Unlock()
					return
				}
				defer file.Close()

				imageUpload, err := util.FileUpload(models.File{File: file})
				if err != nil {
					mu.Lock()
					errs = append(errs, fmt.Errorf("failed to upload %s: %w", header.Filename, err))
					mu.Unlock()
					return
				}

				mu.Lock()
				urls[idx] = imageUpload.SecureURL
				mu.Unlock()
			}(i, header)
		}

		wg.Wait()

		if len(errs) > 0 {
			errMsg := "Failed to upload some images:"
			for _, err := range errs {
				errMsg += "\n" + err.Error()
			}
			util.HandleError(c, http.StatusInternalServerError, errors.New(errMsg))
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Images uploaded", gin.H{"urls": urls})
	}
}
