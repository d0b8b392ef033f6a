package template

// DefaultTemplateName is the display name of the built-in template.
const DefaultTemplateName = "Plantilla por Defecto"

// DefaultTemplate is the built-in report layout covering both modes.
const DefaultTemplate = `
<div style="font-family: Arial, sans-serif; padding: 24px; max-width: 900px; margin: 0 auto;">
  <div style="text-align: center; margin-bottom: 24px; border-bottom: 2px solid #111; padding-bottom: 16px;">
    <h1 style="margin: 0 0 6px 0;">{{COMPANY_NAME}}</h1>
    <h2 style="margin: 0 0 8px 0; color:#444;">Reporte de Deudas y Pagos</h2>
    <small style="color:#777">Fecha: {{REPORT_DATE}} • Generado por: {{USER_NAME}}</small>
  </div>

  {{#IF_GENERAL}}
  <div style="display:grid; grid-template-columns: repeat(3,1fr); gap:14px; margin-bottom: 20px;">
    <div style="border: 1px solid #ddd; border-radius: 8px; padding: 12px; text-align:center;">
      <div style="font-size:12px;color:#666">Total Clientes</div>
      <div style="font-size:22px;font-weight:bold;color:#0d6efd">{{TOTAL_CLIENTS}}</div>
    </div>
    <div style="border: 1px solid #ddd; border-radius: 8px; padding: 12px; text-align:center;">
      <div style="font-size:12px;color:#666">Deuda Total</div>
      <div style="font-size:22px;font-weight:bold;color:#dc3545">$ {{TOTAL_DEBT}}</div>
    </div>
    <div style="border: 1px solid #ddd; border-radius: 8px; padding: 12px; text-align:center;">
      <div style="font-size:12px;color:#666">Total Pagado</div>
      <div style="font-size:22px;font-weight:bold;color:#198754">$ {{TOTAL_PAID}}</div>
    </div>
  </div>

  <h3 style="margin-top: 0; border-bottom:1px solid #ddd; padding-bottom:8px;">Resumen por Cliente</h3>
  <table style="width:100%; border-collapse: collapse;">
    <thead>
      <tr style="background:#f8f9fa">
        <th style="border:1px solid #ddd; padding:8px; text-align:left;">Cliente</th>
        <th style="border:1px solid #ddd; padding:8px; text-align:right;">Deuda</th>
        <th style="border:1px solid #ddd; padding:8px; text-align:right;">Pagado</th>
        <th style="border:1px solid #ddd; padding:8px; text-align:right;">Saldo</th>
      </tr>
    </thead>
    <tbody>
      {{CLIENT_ROWS}}
    </tbody>
  </table>
  {{/IF_GENERAL}}

  {{#IF_CLIENT}}
  <div style="display:grid; grid-template-columns: repeat(3,1fr); gap:14px; margin-bottom: 20px;">
    <div style="border: 1px solid #ddd; border-radius: 8px; padding: 12px; text-align:center;">
      <div style="font-size:12px;color:#666">Cliente</div>
      <div style="font-size:18px;font-weight:bold;">{{CLIENT_NAME}}</div>
    </div>
    <div style="border: 1px solid #ddd; border-radius: 8px; padding: 12px; text-align:center;">
      <div style="font-size:12px;color:#666">Deuda Total</div>
      <div style="font-size:22px;font-weight:bold;color:#dc3545">$ {{CLIENT_DEBT_TOTAL}}</div>
    </div>
    <div style="border: 1px solid #ddd; border-radius: 8px; padding: 12px; text-align:center;">
      <div style="font-size:12px;color:#666">Total Pagado</div>
      <div style="font-size:22px;font-weight:bold;color:#198754">$ {{CLIENT_PAID_TOTAL}}</div>
    </div>
  </div>

  <h3 style="margin-top: 0; border-bottom:1px solid #ddd; padding-bottom:8px;">Deudas</h3>
  <table style="width:100%; border-collapse: collapse; margin-bottom: 14px;">
    <thead>
      <tr style="background:#f8f9fa">
        <th style="border:1px solid #ddd; padding:8px; text-align:left;">Título</th>
        <th style="border:1px solid #ddd; padding:8px; text-align:right;">Monto</th>
        <th style="border:1px solid #ddd; padding:8px; text-align:left;">Fecha</th>
      </tr>
    </thead>
    <tbody>
      {{CLIENT_DEBTS_ROWS}}
    </tbody>
  </table>

  <h3 style="margin-top: 0; border-bottom:1px solid #ddd; padding-bottom:8px;">Pagos</h3>
  <table style="width:100%; border-collapse: collapse;">
    <thead>
      <tr style="background:#f8f9fa">
        <th style="border:1px solid #ddd; padding:8px; text-align:left;">Notas</th>
        <th style="border:1px solid #ddd; padding:8px; text-align:right;">Monto</th>
        <th style="border:1px solid #ddd; padding:8px; text-align:left;">Fecha</th>
      </tr>
    </thead>
    <tbody>
      {{CLIENT_PAYMENTS_ROWS}}
    </tbody>
  </table>
  {{/IF_CLIENT}}

  <div style="margin-top:16px; text-align:center; color:#777; font-size:12px;">
    Generado el {{GENERATION_DATE}}
  </div>
</div>
`
