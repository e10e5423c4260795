package pdf

// WithPaperSize 设置纸张尺寸（英寸）
func WithPaperSize(width, height float64) Option {
	return func(o *Options) {
		o.PaperWidthInch = width
		o.PaperHeightInch = height
	}
}

// WithMargins 设置页边距（英寸）
func WithMargins(top, bottom, left, right float64) Option {
	return func(o *Options) {
		o.MarginTopInch = top
		o.MarginBottomInch = bottom
		o.MarginLeftInch = left
		o.MarginRightInch = right
	}
}

// WithTitle 设置文档标题
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}
