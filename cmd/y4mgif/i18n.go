// Package main provides localization for the y4mgif CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		"Convert raw Y4M video into animated GIF":               "非圧縮Y4M動画をアニメーションGIFに変換",
		"Convert a Y4M file (or - for stdin) to an animated GIF": "Y4Mファイル（または標準入力の -）をアニメーションGIFに変換",
		"Print stream metadata and an estimated frame count":     "ストリームのメタデータと推定フレーム数を表示",

		"Output GIF file path":                                   "出力GIFファイルパス",
		"Output frame rate (default: 20)":                        "出力フレームレート（デフォルト: 20）",
		"Playback speed multiplier (2.0 plays twice as fast)":    "再生速度の倍率（2.0で2倍速）",
		"Output width (0 keeps source)":                          "出力幅（0でソースのまま）",
		"Output height (0 keeps source)":                         "出力高さ（0でソースのまま）",
		"GIF loop count (0 loops forever, -1 plays once)":        "GIFのループ回数（0で無限ループ、-1で1回再生）",
		"Burn the presentation timestamp into each frame":        "各フレームにタイムスタンプを焼き込む",
		"YAML configuration file":                                "YAML設定ファイル",
		"Force color matrix: bt601 or bt709":                     "カラーマトリクスを強制: bt601 または bt709",
		"Log level (debug, info, warn, error)":                   "ログレベル (debug, info, warn, error)",
		"Suppress all log output":                                "すべてのログ出力を抑制",
		"Print the summary as JSON":                              "サマリーをJSONで表示",
	})
}
