package documents

// Shared print stylesheet injected into every template via the reserved
// {{style}} token. Khmer OS Muol Light carries the heading register used on
// official documents; body text falls back through the common Khmer fonts.
const contractStylesheet = `<style>
  @page { size: A4; margin: 25mm 20mm; }
  body { font-family: 'Khmer OS Battambang', 'Khmer OS', 'Noto Sans Khmer', serif; font-size: 12pt; line-height: 2; color: #000; }
  h1, h2, .doc-title { font-family: 'Khmer OS Muol Light', 'Khmer OS Muol', 'Noto Serif Khmer', serif; text-align: center; font-weight: normal; }
  .doc-title { font-size: 16pt; margin-bottom: 4px; }
  .doc-subtitle { text-align: center; font-size: 12pt; margin-top: 0; }
  p { text-align: justify; text-indent: 40px; margin: 8px 0; }
  ol.land-list { margin: 8px 0 8px 60px; padding: 0; }
  ol.land-list li { text-align: justify; margin-bottom: 6px; }
  table.payment-schedule { width: 100%; border-collapse: collapse; margin: 12px 0; }
  table.payment-schedule th, table.payment-schedule td { border: 1px solid #000; padding: 6px 8px; font-size: 11pt; }
  table.payment-schedule th { text-align: center; font-weight: bold; background: #f0f0f0; }
  table.payment-schedule td.amount { text-align: right; }
  table.payment-schedule td.center { text-align: center; }
  .signature-row { display: flex; justify-content: space-between; margin-top: 48px; }
  .signature-cell { width: 45%; text-align: center; }
  .signature-line { margin-top: 72px; }
  .image-page { page-break-before: always; text-align: center; }
  .image-page-header { font-family: 'Khmer OS Muol Light', 'Noto Serif Khmer', serif; font-size: 13pt; margin-bottom: 16px; }
  .image-page img { max-width: 100%; max-height: 230mm; }
</style>`
