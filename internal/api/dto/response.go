package dto

// ==================== 远端信封 ====================

// ApiResponse 远端统一响应信封
// 列表接口填 datas，单实体接口填 data；两者都可能缺失，
// 缺失按空结果处理而不是错误（只有传输层失败才算错）
type ApiResponse[T any] struct {
	ResponseCode    string `json:"responseCode"`
	ResponseMessage string `json:"responseMessage"`
	Data            *T     `json:"data,omitempty"`
	Datas           []T    `json:"datas,omitempty"`
}

// ==================== 本地接口响应 ====================

// StateResp 本地 store 状态快照响应
type StateResp struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// SelectionResp 选中状态响应
type SelectionResp struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}
