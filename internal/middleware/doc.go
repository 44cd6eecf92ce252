// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 這個包包含身份驗證中間件和授權守衛：前者解析 token 並把請求主體
// 放進 context，後者依據集中式權限表決定請求主體能否執行某個操作。
package middleware
