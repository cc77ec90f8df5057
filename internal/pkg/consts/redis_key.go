package consts

const (
	// ImageTempKey 已上传但尚未挂到帖子上的图片元数据 Hash
	ImageTempKey = "image:temp"
	// TokenBlacklistKey 注销 Token 的签名黑名单前缀
	TokenBlacklistKey = "token:blacklist:"
)
