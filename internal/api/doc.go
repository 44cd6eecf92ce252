// Package api 處理 HTTP 請求路由和處理。
//
// 這個包包含了所有的 HTTP 處理器（handlers）以及路由設置。
// 每條受保護的路由都宣告自己對應的操作，交由授權守衛檢查角色，
// 處理器只負責把請求轉換為服務調用，並將結果轉換回 HTTP 響應。
package api
