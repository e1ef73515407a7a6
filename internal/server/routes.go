package server

import (
	"fmt"
	"net/http"
	"path"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"github.com/arcanaland/arcanaview/internal/card"
)

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/", s.index)
	r.Static(ImagePrefix, s.deck.Path)

	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.POST("/reading", s.reading)
		api.GET("/card/:id", s.cardInfo)
		api.GET("/qr", s.qr)
	}
}

type cardView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Reversed    bool   `json:"reversed"`
	Orientation string `json:"orientation"`
	HTML        string `json:"html"`
}

type readingRequest struct {
	Question string `json:"question"`
	Count    int    `json:"count"`
	Seed     *int64 `json:"seed"`
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// index renders a reading page; ?seed= makes it reproducible
func (s *Server) index(c *gin.Context) {
	seed, count, err := s.readingParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reading, err := s.Draw(seed, count)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	body, err := s.Page(reading)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}

func (s *Server) reading(c *gin.Context) {
	var req readingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question is required"})
		return
	}

	seed := s.newSeed()
	if req.Seed != nil {
		seed = *req.Seed
	}

	reading, err := s.Draw(seed, req.Count)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cards := make([]cardView, 0, len(reading.Cards))
	for _, rc := range reading.Cards {
		cards = append(cards, s.view(rc))
	}

	c.JSON(http.StatusOK, gin.H{
		"question":  req.Question,
		"seed":      reading.Seed,
		"cards":     cards,
		"permalink": permalink(c, reading.Seed, len(reading.Cards)),
	})
}

func (s *Server) cardInfo(c *gin.Context) {
	found, err := s.deck.GetCard(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}

	info := gin.H{
		"id":       found.ID,
		"name":     found.Name,
		"type":     found.Type,
		"alt_text": found.AltText,
	}
	if found.IsMinor() {
		info["suit"] = found.Suit
		info["rank"] = found.Rank
	} else {
		info["number"] = found.Number
	}
	if rel, err := s.deck.ImagePath(found.ID); err == nil {
		info["image"] = path.Join(ImagePrefix, filepath.ToSlash(rel))
	}
	c.JSON(http.StatusOK, info)
}

// qr returns a PNG QR code linking to the reading page for ?seed=
func (s *Server) qr(c *gin.Context) {
	seed, count, err := s.readingParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if count == 0 {
		count = s.spreadSize
	}

	size := 256
	if v := c.Query("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 2048 {
			size = n
		}
	}

	png, err := qrcode.Encode(permalink(c, seed, count), qrcode.Medium, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (s *Server) view(c card.Card) cardView {
	return cardView{
		ID:          c.ID,
		Name:        c.Name,
		Image:       c.ImagePath,
		Reversed:    c.IsReversed,
		Orientation: c.Orientation(),
		HTML:        s.renderer.RenderString(c),
	}
}

func (s *Server) readingParams(c *gin.Context) (seed int64, count int, err error) {
	seed = s.newSeed()
	if v := c.Query("seed"); v != "" {
		if seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return 0, 0, fmt.Errorf("invalid seed: %s", v)
		}
	}
	if v := c.Query("count"); v != "" {
		if count, err = strconv.Atoi(v); err != nil {
			return 0, 0, fmt.Errorf("invalid count: %s", v)
		}
	}
	return seed, count, nil
}

func permalink(c *gin.Context, seed int64, count int) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/?seed=%d&count=%d", scheme, c.Request.Host, seed, count)
}
