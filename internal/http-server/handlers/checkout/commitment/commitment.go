package commitment

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventCheckout/internal/lib/api/response"
	"eventCheckout/internal/lib/auth"
	"eventCheckout/internal/lib/logger/sl"
	"eventCheckout/internal/models"
	"eventCheckout/internal/storage"
)

// maxUploadBytes caps a single receipt upload.
const maxUploadBytes = 10 << 20

type UploadResponse struct {
	response.Response
	Payment *models.Payment `json:"payment"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttachmentStore
type AttachmentStore interface {
	GetCheckout(ctx context.Context, id string) (*models.Checkout, error)
	SetAttachment(ctx context.Context, id string, kind models.AttachmentKind, path string) (*models.Payment, error)
	RemoveAttachment(ctx context.Context, id string, kind models.AttachmentKind) (string, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Notifier
type Notifier interface {
	NotifyReceiptUploaded(checkoutID string, kind models.AttachmentKind)
}

// NewUpload returns the handler that receives a commitment-flow document as
// multipart form data. Which kind is accepted depends on the current payment
// stage; uploading again at the same stage replaces the file.
func NewUpload(log *slog.Logger, store AttachmentStore, notifier Notifier, uploadsDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.checkout.commitment.NewUpload"

		log := log.With(
			slog.String("op", op),
		)

		checkout, kind, ok := resolve(w, r, log, store)
		if !ok {
			return
		}

		if checkout.Payment == nil || checkout.Payment.Method != models.PaymentMethodCommitment {
			log.Info("checkout is not a commitment purchase", slog.String("id", checkout.ID))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("checkout does not use the commitment payment method"))
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			log.Error("failed to parse multipart form", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to parse upload"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			log.Error("missing file field", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("file is required"))
			return
		}
		defer file.Close()

		dir := filepath.Join(uploadsDir, checkout.ID)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Error("failed to create upload dir", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save upload"))
			return
		}

		path := filepath.Join(dir, string(kind)+filepath.Ext(header.Filename))
		dst, err := os.Create(path)
		if err != nil {
			log.Error("failed to create upload file", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save upload"))
			return
		}
		defer dst.Close()

		if _, err := io.Copy(dst, file); err != nil {
			log.Error("failed to write upload file", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save upload"))
			return
		}

		payment, err := store.SetAttachment(r.Context(), checkout.ID, kind, path)
		if err != nil {
			os.Remove(path)

			if errors.Is(err, models.ErrAttachmentNotAllowed) {
				log.Info("attachment not allowed at current stage",
					slog.String("id", checkout.ID),
					slog.String("kind", string(kind)),
				)
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("this document is not expected at the current payment stage"))
				return
			}

			log.Error("failed to record attachment", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save upload"))
			return
		}

		notifier.NotifyReceiptUploaded(checkout.ID, kind)

		log.Info("attachment uploaded",
			slog.String("id", checkout.ID),
			slog.String("kind", string(kind)),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, UploadResponse{
			Response: response.OK(),
			Payment:  payment,
		})
	}
}

// NewRemove returns the handler that detaches a previously uploaded document
// and deletes the file from disk.
func NewRemove(log *slog.Logger, store AttachmentStore, uploadsDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.checkout.commitment.NewRemove"

		log := log.With(
			slog.String("op", op),
		)

		checkout, kind, ok := resolve(w, r, log, store)
		if !ok {
			return
		}

		removed, err := store.RemoveAttachment(r.Context(), checkout.ID, kind)
		if err != nil {
			if errors.Is(err, storage.ErrNoPayment) {
				log.Info("checkout has no payment", slog.String("id", checkout.ID))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("checkout has no payment document"))
				return
			}

			log.Error("failed to remove attachment", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to remove attachment"))
			return
		}

		if removed != "" {
			if err := os.Remove(removed); err != nil && !os.IsNotExist(err) {
				log.Warn("failed to delete attachment file",
					slog.String("path", removed),
					sl.Err(err),
				)
			}
		}

		log.Info("attachment removed",
			slog.String("id", checkout.ID),
			slog.String("kind", string(kind)),
		)

		render.JSON(w, r, response.OK())
	}
}

// resolve loads the checkout from the URL, checks ownership and parses the
// attachment kind. It writes the error response itself and reports ok=false.
func resolve(w http.ResponseWriter, r *http.Request, log *slog.Logger, store AttachmentStore) (*models.Checkout, models.AttachmentKind, bool) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		log.Error("no identity in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return nil, "", false
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Error("checkout id is required")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("checkout id is required"))
		return nil, "", false
	}

	kind := models.AttachmentKind(chi.URLParam(r, "kind"))
	if !kind.Valid() {
		log.Error("unknown attachment kind", slog.String("kind", string(kind)))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("unknown attachment kind"))
		return nil, "", false
	}

	checkout, err := store.GetCheckout(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrCheckoutNotFound) {
			log.Info("checkout not found", slog.String("id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("checkout not found"))
			return nil, "", false
		}

		log.Error("failed to get checkout", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to get checkout"))
		return nil, "", false
	}

	if checkout.UserID != identity.UserID && !identity.Admin {
		log.Warn("forbidden attachment access",
			slog.String("id", id),
			slog.String("user_id", identity.UserID),
		)
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, response.Error("forbidden"))
		return nil, "", false
	}

	return checkout, kind, true
}
