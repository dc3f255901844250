package filter

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"

	"github.com/mikey/spam-detector-api/internal/core"
	"golang.org/x/text/encoding/htmlindex"
)

// maxMultipartDepth bounds recursion into nested multipart bodies
const maxMultipartDepth = 5

var headerDecoder = &mime.WordDecoder{CharsetReader: charsetReader}

// ParseEmail reads an RFC 822 message and extracts the fields used for scoring
func ParseEmail(r io.Reader) (*core.Email, error) {
	msg, err := mail.ReadMessage(bufio.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("failed to parse email: %w", err)
	}

	body, err := extractTextFromMessage(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to read email body: %w", err)
	}

	email := &core.Email{
		From:    decodeHeader(msg.Header.Get("From")),
		Subject: decodeHeader(msg.Header.Get("Subject")),
		Body:    body,
		Headers: make(map[string][]string, len(msg.Header)),
	}
	for _, to := range strings.Split(msg.Header.Get("To"), ",") {
		if to = strings.TrimSpace(decodeHeader(to)); to != "" {
			email.To = append(email.To, to)
		}
	}
	for k, v := range msg.Header {
		email.Headers[k] = v
	}

	return email, nil
}

// extractTextFromMessage returns the readable text of a message. Plain text
// parts are preferred; HTML parts are used only when there is no plain text.
func extractTextFromMessage(msg *mail.Message) (string, error) {
	plain, html, err := extractText(
		msg.Header.Get("Content-Type"),
		msg.Header.Get("Content-Transfer-Encoding"),
		msg.Body,
		0,
	)
	if err != nil {
		return "", err
	}
	if plain != "" {
		return plain, nil
	}
	return html, nil
}

func extractText(contentType, transferEncoding string, body io.Reader, depth int) (plain, html string, err error) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if contentType == "" || err != nil {
		// RFC 2045 default
		mediaType, params = "text/plain", nil
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		boundary := params["boundary"]
		if boundary == "" || depth >= maxMultipartDepth {
			return "", "", nil
		}
		return extractMultipart(multipart.NewReader(body, boundary), depth)
	}

	if mediaType != "text/plain" && mediaType != "text/html" {
		// Attachments and other media
		return "", "", nil
	}

	decoded, err := readPart(body, transferEncoding, params["charset"])
	if err != nil {
		return "", "", err
	}
	if mediaType == "text/html" {
		return "", decoded, nil
	}
	return decoded, "", nil
}

func extractMultipart(mr *multipart.Reader, depth int) (string, string, error) {
	var plain, html []string
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Keep whatever was read before the broken part
			if len(plain) > 0 || len(html) > 0 {
				break
			}
			return "", "", err
		}

		p, h, err := extractText(part.Header.Get("Content-Type"), part.Header.Get("Content-Transfer-Encoding"), part, depth+1)
		if err != nil {
			continue
		}
		if p != "" {
			plain = append(plain, p)
		}
		if h != "" {
			html = append(html, h)
		}
	}
	return strings.Join(plain, "\n"), strings.Join(html, "\n"), nil
}

// readPart undoes the transfer encoding and converts the charset to UTF-8
func readPart(body io.Reader, transferEncoding, charset string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(transferEncoding)) {
	case "base64":
		body = base64.NewDecoder(base64.StdEncoding, body)
	case "quoted-printable":
		body = quotedprintable.NewReader(body)
	}

	if charset != "" {
		if r, err := charsetReader(charset, body); err == nil {
			body = r
		}
	}

	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", charset, err)
	}
	return enc.NewDecoder().Reader(input), nil
}

// decodeHeader decodes RFC 2047 encoded words, returning the raw value if
// decoding fails
func decodeHeader(value string) string {
	decoded, err := headerDecoder.DecodeHeader(value)
	if err != nil {
		return value
	}
	return decoded
}
