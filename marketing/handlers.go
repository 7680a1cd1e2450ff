package marketing

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Biswa2Das/marketing-storyline/models"
	"github.com/Biswa2Das/marketing-storyline/processing"
)

// Handler serves the feature-extraction and storyline endpoints. DB is
// optional; when configured, successful results are persisted as history.
type Handler struct {
	Extractor *processing.FeatureExtractor
	Stories   *processing.StoryGenerator
	DB        *gorm.DB
	Model     string
}

func NewHandler(extractor *processing.FeatureExtractor, stories *processing.StoryGenerator, db *gorm.DB, model string) *Handler {
	return &Handler{Extractor: extractor, Stories: stories, DB: db, Model: model}
}

// ExtractResponse wraps the extracted feature list.
type ExtractResponse struct {
	Features []models.Feature `json:"features"`
}

func (h *Handler) ExtractFeatures(c *gin.Context) {
	var req models.ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	features, err := h.Extractor.Extract(c.Request.Context(), &req)
	if err != nil {
		h.renderError(c, err, "feature extraction")
		return
	}

	h.recordExtraction(&req, features)
	c.JSON(http.StatusOK, ExtractResponse{Features: features})
}

func (h *Handler) GenerateStoryline(c *gin.Context) {
	var req models.StorylineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	pkg, err := h.Stories.Generate(c.Request.Context(), &req)
	if err != nil {
		h.renderError(c, err, "storyline generation")
		return
	}

	h.recordStoryline(&req, pkg)
	c.JSON(http.StatusOK, pkg)
}

// ListStorylines returns persisted storyline history, newest first.
// Registered only when a database is configured.
func (h *Handler) ListStorylines(c *gin.Context) {
	var records []models.StorylineRecord
	if err := h.DB.Order("created_at desc").Limit(50).Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve storylines"})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) renderError(c *gin.Context, err error, op string) {
	var vErr *models.ValidationError
	if errors.As(err, &vErr) {
		log.Printf("Validation error in %s: %v", op, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
		return
	}
	log.Printf("Unexpected error in %s: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during " + op})
}

// recordExtraction persists an extraction result. Failures are logged and
// never fail the request.
func (h *Handler) recordExtraction(req *models.ExtractRequest, features []models.Feature) {
	if h.DB == nil {
		return
	}
	payload, err := json.Marshal(features)
	if err != nil {
		log.Printf("Error marshalling features for history: %v", err)
		return
	}
	record := models.ExtractionRecord{
		ProductPrompt: req.ProductPrompt,
		MaxFeatures:   *req.MaxFeatures,
		FeatureCount:  len(features),
		FeaturesJSON:  string(payload),
		Model:         h.Model,
	}
	if err := h.DB.Create(&record).Error; err != nil {
		log.Printf("Error saving extraction history: %v", err)
	}
}

func (h *Handler) recordStoryline(req *models.StorylineRequest, pkg *models.StorylinePackage) {
	if h.DB == nil {
		return
	}
	payload, err := json.Marshal(pkg)
	if err != nil {
		log.Printf("Error marshalling storyline for history: %v", err)
		return
	}
	record := models.StorylineRecord{
		ProductPrompt: req.ProductPrompt,
		Tone:          string(req.Tone),
		Length:        string(req.Length),
		Audience:      req.Audience,
		PackageJSON:   string(payload),
		Model:         h.Model,
	}
	if err := h.DB.Create(&record).Error; err != nil {
		log.Printf("Error saving storyline history: %v", err)
	}
}
