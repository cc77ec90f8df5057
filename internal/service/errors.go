package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrUserUsernameExist = errors.New("用户名已存在")
	ErrUserEmailExist    = errors.New("E-mail已被注册")
	ErrPasswordIncorrect = errors.New("密码错误")
	ErrPostNotFound      = errors.New("帖子不存在")
	ErrCategoryNotFound  = errors.New("分类不存在")
	ErrLocationNotFound  = errors.New("地点不存在")
	ErrCommentNotFound   = errors.New("评论不存在")
	ErrFileNotSupported  = errors.New("不支持的文件类型")
	ErrFileNotExist      = errors.New("文件不存在")
	UnauthorizedError    = errors.New("权限不足")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrUserNotFound:      NotFound,
	ErrUserUsernameExist: BadRequest,
	ErrUserEmailExist:    BadRequest,
	ErrPasswordIncorrect: Unauthorized,
	ErrPostNotFound:      NotFound,
	ErrCategoryNotFound:  NotFound,
	ErrLocationNotFound:  NotFound,
	ErrCommentNotFound:   NotFound,
	ErrFileNotSupported:  BadRequest,
	ErrFileNotExist:      NotFound,
	UnauthorizedError:    Unauthorized,
	UnExpectedError:      InternalServerError,
}
