package pinata

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"golang.org/x/xerrors"

	"github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/log"
)

const (
	DefaultEndpoint = "https://api.pinata.cloud"
	pinPath         = "/pinning/pinFileToIPFS"
	pinJsonPath     = "/pinning/pinJSONToIPFS"
)

type Cfg struct {
	ApiKey    string
	ApiSecret string
	// Endpoint defaults to DefaultEndpoint
	Endpoint string
	Client   *http.Client
}

type pinataImpl struct {
	apiKey    string
	apiSecret string
	endpoint  string
	client    *http.Client
}

func New(cfg *Cfg) Service {
	im := &pinataImpl{
		apiKey:    cfg.ApiKey,
		apiSecret: cfg.ApiSecret,
		endpoint:  cfg.Endpoint,
		client:    cfg.Client,
	}
	if len(im.endpoint) == 0 {
		im.endpoint = DefaultEndpoint
	}
	if im.client == nil {
		im.client = http.DefaultClient
	}
	return im
}

func (im *pinataImpl) Pin(c ctx.Ctx, file io.Reader, filename string, opts ...PinOption) (string, error) {
	pr := newPinRequest(opts)

	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		c.WithField("err", err).Error("w.CreateFormFile failed")
		return "", err
	}
	if _, err := io.Copy(fw, file); err != nil {
		c.WithField("err", err).Error("io.Copy failed")
		return "", err
	}
	fields := map[string]interface{}{}
	if pr.Metadata != nil {
		fields["pinataMetadata"] = pr.Metadata
	}
	if pr.Options != nil {
		fields["pinataOptions"] = pr.Options
	}
	for name, v := range fields {
		if err := writeJsonField(w, name, v); err != nil {
			c.WithFields(log.Fields{
				"field": name,
				"err":   err,
			}).Error("writeJsonField failed")
			return "", err
		}
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	return im.post(c, pinPath, w.FormDataContentType(), &b)
}

func (im *pinataImpl) PinJson(c ctx.Ctx, value interface{}, opts ...PinOption) (string, error) {
	pr := newPinRequest(opts)
	pr.Content = value

	body, err := json.Marshal(pr)
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return "", err
	}
	return im.post(c, pinJsonPath, "application/json", bytes.NewReader(body))
}

func (im *pinataImpl) post(c ctx.Ctx, path, contentType string, body io.Reader) (string, error) {
	req, err := http.NewRequestWithContext(c, http.MethodPost, im.endpoint+path, body)
	if err != nil {
		c.WithField("err", err).Error("http.NewRequest failed")
		return "", err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("pinata_api_key", im.apiKey)
	req.Header.Set("pinata_secret_api_key", im.apiSecret)

	resp, err := im.client.Do(req)
	if err != nil {
		c.WithField("err", err).Error("client.Do failed")
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		c.WithFields(log.Fields{
			"statusCode": resp.StatusCode,
			"errorBody":  string(errorBody),
		}).Error("pinata request failed")
		return "", xerrors.Errorf("status %d: %w", resp.StatusCode, ErrRequestFailed)
	}

	p := &pinResponse{}
	if err := json.NewDecoder(resp.Body).Decode(p); err != nil {
		c.WithField("err", err).Error("json.NewDecoder.Decode failed")
		return "", err
	}
	return p.IpfsHash, nil
}

type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

func writeJsonField(w *multipart.Writer, field string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return w.WriteField(field, string(b))
}
