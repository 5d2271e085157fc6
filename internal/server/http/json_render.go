package httpserver

import (
	"net/http"
	"unsafe"

	ginrender "github.com/gin-gonic/gin/render"
	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"

	"github.com/dkovalev/gamestore/internal/models"
)

// dateEncoder emits models.Date values as DD.MM.YYYY strings.
type dateEncoder struct{}

func (e *dateEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	d := *((*models.Date)(ptr))
	return d.IsZero()
}

func (e *dateEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	d := *((*models.Date)(ptr))
	stream.WriteString(d.Format(models.DateLayout))
}

// dateExt registers the encoder for models.Date on the per-API basis.
type dateExt struct{ jsoniter.DummyExtension }

func (e *dateExt) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	dt := reflect2.TypeOfPtr((*models.Date)(nil)).Elem()
	if typ == dt {
		return &dateEncoder{}
	}
	return nil
}

var jsonAPI = func() jsoniter.API {
	api := jsoniter.ConfigCompatibleWithStandardLibrary
	api.RegisterExtension(&dateExt{})
	return api
}()

// jsonRender renders JSON using json-iterator with our global options.
type jsonRender struct{ Data any }

func (r jsonRender) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	enc := jsonAPI.NewEncoder(w)
	return enc.Encode(r.Data)
}

func (r jsonRender) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = []string{"application/json; charset=utf-8"}
	}
}

var _ ginrender.Render = jsonRender{}
