// Package reportpdf provides HTML-to-PDF engines for soil report exports.
//
// ChromiumEngine drives a shared headless Chromium instance over the DevTools
// protocol and is the default choice; WKHTMLTOPDFEngine shells out to
// wkhtmltopdf for environments without a browser. Both satisfy report.Engine.
package reportpdf
