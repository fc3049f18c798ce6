package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/UnTrende/luxx-sub002/internal/httperr"
	"github.com/UnTrende/luxx-sub002/internal/middleware"
	"github.com/UnTrende/luxx-sub002/internal/models"
	"github.com/UnTrende/luxx-sub002/internal/storage"
)

// Upload da foto do serviço: decodifica, reduz, reencoda webp e publica
// no bucket. Sem bucket configurado a rota responde 503.
type ServiceImageHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewServiceImageHandler(db *gorm.DB, uploader *storage.Uploader) *ServiceImageHandler {
	return &ServiceImageHandler{db: db, uploader: uploader}
}

const maxImageBytes = 8 << 20 // 8 MiB

func (h *ServiceImageHandler) Upload(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	if !h.uploader.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "uploads_disabled"})
		return
	}

	id := c.Param("id")

	var service models.Service
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&service).Error; err != nil {

		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Arquivo de imagem obrigatório.")
		return
	}
	defer file.Close()

	if header.Size > maxImageBytes {
		httperr.BadRequest(c, "image_too_large", "Imagem acima de 8MB.")
		return
	}

	encoded, err := storage.EncodeWebP(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida (use JPEG ou PNG).")
		return
	}

	key := fmt.Sprintf("services/%d/%d.webp", barbershopID, service.ID)
	url, err := h.uploader.Put(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "upload_failed", "Erro ao enviar a imagem.")
		return
	}

	service.ImageURL = url
	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao salvar a imagem do serviço.")
		return
	}

	c.JSON(http.StatusOK, service)
}
