package uploadController

import (
	"bytes"
	"fmt"
	"path/filepath"
	"time"

	"learnhub/middleware"
	"learnhub/storage"
	"learnhub/utils"
	instructorValidator "learnhub/validators/instructor"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadAsset stores a multipart upload in the object store and returns the
// public URL. Clients upload assets first, then reference the URLs when
// saving the course or its modules. Falls back to local disk when the
// object store is not configured.
func UploadAsset(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "No file provided!")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to read uploaded file!")
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := assetKey(fileHeader.Filename)

	var url string
	if storage.Enabled() {
		url, err = storage.UploadFile(c.Context(), key, contentType, src)
	} else {
		url, err = utils.SaveLocalFile(key, src)
	}
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store uploaded file!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "File uploaded successfully!", fiber.Map{
		"url": url,
		"key": key,
	})
}

// ImportAsset fetches a remote file server-side and re-uploads it to the
// object store, so instructors can pull media in without downloading it
// themselves
func ImportAsset(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedImport").(*instructorValidator.ImportAssetRequest)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	client := resty.New().SetTimeout(30 * time.Second)
	resp, err := client.R().Get(reqData.URL)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to fetch remote file!")
	}
	if resp.StatusCode() != fiber.StatusOK {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Remote server returned status %d!", resp.StatusCode()))
	}

	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := assetKey(reqData.URL)
	body := bytes.NewReader(resp.Body())

	var url string
	if storage.Enabled() {
		url, err = storage.UploadFile(c.Context(), key, contentType, body)
	} else {
		url, err = utils.SaveLocalFile(key, body)
	}
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store imported file!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "File imported successfully!", fiber.Map{
		"url": url,
		"key": key,
	})
}

// assetKey builds a collision-free object key, keeping the original
// extension for content-type sniffing by CDNs
func assetKey(filename string) string {
	return "courses/" + uuid.NewString() + filepath.Ext(filename)
}
