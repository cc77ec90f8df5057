package consts

const (
	// NumberPostsOnPage 列表页默认条数，server.page_size 未配置时使用
	NumberPostsOnPage = 10

	MimePrefixImage = "image"
)

const (
	LoginPath = "/auth/login/"
)
