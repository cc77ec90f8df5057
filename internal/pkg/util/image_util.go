package util

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/disintegration/imaging"
)

// MaxImageWidth 超过该宽度的图片在入库前等比缩小
const MaxImageWidth = 1920

// GetSafeContentType 按文件头嗅探真实的 MIME 类型，读完后把游标拨回开头
func GetSafeContentType(file io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

// NormalizeImage 解码图片，必要时等比缩小，再统一编码为 JPEG。
// 返回编码后的数据与最终尺寸。
func NormalizeImage(reader io.Reader) (*bytes.Buffer, int, int, error) {
	img, err := imaging.Decode(reader, imaging.AutoOrientation(true))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("图片解码失败: %w", err)
	}

	if img.Bounds().Dx() > MaxImageWidth {
		img = imaging.Resize(img, MaxImageWidth, 0, imaging.Lanczos)
	}

	buf := &bytes.Buffer{}
	if err = imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		return nil, 0, 0, fmt.Errorf("图片编码失败: %w", err)
	}

	bounds := img.Bounds()
	return buf, bounds.Dx(), bounds.Dy(), nil
}
