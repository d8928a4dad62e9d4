package handlers

import (
	"net/url"
	"strconv"
	"time"

	config "github.com/SutariyaDeep123/RentRealm/configs"
	"github.com/SutariyaDeep123/RentRealm/utils"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

// GenerateUploadSignature signs a direct-to-Cloudinary upload so property
// images never pass through this server.
func GenerateUploadSignature(c *fiber.Ctx) error {
	cloudinaryURL := config.Config("CLOUDINARY_URL")
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return utils.Internal("Failed to initialize Cloudinary")
	}

	parsedURL, err := url.Parse(cloudinaryURL)
	if err != nil {
		return utils.Internal("Failed to parse Cloudinary URL")
	}
	secret, _ := parsedURL.User.Password()

	paramsToSign, err := api.StructToParams(uploader.UploadParams{
		Folder: "rentrealm_properties",
	})
	if err != nil {
		return utils.Internal("Failed to prepare signature params")
	}

	timestamp := time.Now().Unix()
	paramsToSign.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(paramsToSign, secret)
	if err != nil {
		return utils.Internal("Failed to sign upload params")
	}

	return utils.Respond(c, fiber.StatusOK, fiber.Map{
		"signature":  signature,
		"timestamp":  timestamp,
		"api_key":    cld.Config.Cloud.APIKey,
		"cloud_name": cld.Config.Cloud.CloudName,
		"folder":     "rentrealm_properties",
	})
}
